package queue_test

import (
	"testing"

	"github.com/randomizedcoder/go-mpsc/internal/queue"
)

func testDeque[T comparable](t *testing.T, d *queue.Deque[T], val T, name string) {
	t.Helper()

	// Empty deque returns false
	if _, ok := d.PopFront(); ok {
		t.Errorf("%s: expected PopFront() = false on empty deque", name)
	}

	d.PushBack(val)
	if d.Len() != 1 {
		t.Errorf("%s: expected Len() = 1 after PushBack(), got %d", name, d.Len())
	}

	// Pop returns pushed value
	got, ok := d.PopFront()
	if !ok {
		t.Errorf("%s: expected PopFront() = true after PushBack()", name)
	}
	if got != val {
		t.Errorf("%s: expected %v, got %v", name, val, got)
	}

	// Deque is empty again
	if _, ok := d.PopFront(); ok {
		t.Errorf("%s: expected PopFront() = false after draining", name)
	}
}

func TestDeque(t *testing.T) {
	testCases := []struct {
		name string
		d    *queue.Deque[int]
	}{
		{"Zero", &queue.Deque[int]{}},
		{"Size0", queue.NewDeque[int](0)},
		{"Size1", queue.NewDeque[int](1)},
		{"Size8", queue.NewDeque[int](8)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testDeque(t, tc.d, 42, tc.name)
		})
	}
}

func TestDeque_FIFO(t *testing.T) {
	d := queue.NewDeque[int](8)

	for i := 0; i < 5; i++ {
		d.PushBack(i)
	}

	for i := 0; i < 5; i++ {
		got, ok := d.PopFront()
		if !ok {
			t.Fatalf("expected PopFront() = true for item %d", i)
		}
		if got != i {
			t.Errorf("FIFO violation: expected %d, got %d", i, got)
		}
	}
}

func TestDeque_Grow(t *testing.T) {
	d := queue.NewDeque[int](2)

	for i := 0; i < 100; i++ {
		d.PushBack(i)
	}
	if d.Len() != 100 {
		t.Errorf("expected Len() = 100, got %d", d.Len())
	}
	if d.Cap() != 128 {
		t.Errorf("expected Cap() = 128, got %d", d.Cap())
	}

	for i := 0; i < 100; i++ {
		got, ok := d.PopFront()
		if !ok || got != i {
			t.Fatalf("expected (%d, true), got (%d, %v)", i, got, ok)
		}
	}
}

// TestDeque_GrowWrapped grows a deque whose items wrap around the end of
// the buffer, which must not reorder them.
func TestDeque_GrowWrapped(t *testing.T) {
	d := queue.NewDeque[int](4)

	d.PushBack(0)
	d.PushBack(1)
	d.PushBack(2)
	d.PopFront()
	d.PopFront()
	// head is now at index 2; these wrap to indices 3, 0, 1
	d.PushBack(3)
	d.PushBack(4)
	d.PushBack(5)
	// full: forces a grow with a wrapped layout
	d.PushBack(6)

	if d.Cap() != 8 {
		t.Errorf("expected Cap() = 8, got %d", d.Cap())
	}
	for want := 2; want <= 6; want++ {
		got, ok := d.PopFront()
		if !ok || got != want {
			t.Fatalf("expected (%d, true), got (%d, %v)", want, got, ok)
		}
	}
	if d.Len() != 0 {
		t.Errorf("expected Len() = 0, got %d", d.Len())
	}
}

func TestDeque_PowerOfTwo(t *testing.T) {
	// Size 5 should round up to 8
	d := queue.NewDeque[int](5)
	if d.Cap() != 8 {
		t.Errorf("expected Cap() = 8 (rounded up), got %d", d.Cap())
	}

	// Size 8 should stay 8
	d2 := queue.NewDeque[int](8)
	if d2.Cap() != 8 {
		t.Errorf("expected Cap() = 8, got %d", d2.Cap())
	}

	// Zero value allocates lazily
	var d3 queue.Deque[int]
	if d3.Cap() != 0 {
		t.Errorf("expected Cap() = 0 for zero Deque, got %d", d3.Cap())
	}
	d3.PushBack(1)
	if d3.Cap() != 16 {
		t.Errorf("expected Cap() = 16 after first push, got %d", d3.Cap())
	}
}

func TestDeque_Swap(t *testing.T) {
	var a, b queue.Deque[int]
	a.PushBack(1)
	a.PushBack(2)
	a.PushBack(3)

	a.Swap(&b)

	if a.Len() != 0 {
		t.Errorf("expected Len() = 0 after Swap, got %d", a.Len())
	}
	if b.Len() != 3 {
		t.Errorf("expected Len() = 3 after Swap, got %d", b.Len())
	}
	for i := 1; i <= 3; i++ {
		got, ok := b.PopFront()
		if !ok || got != i {
			t.Fatalf("expected (%d, true), got (%d, %v)", i, got, ok)
		}
	}

	// the emptied side keeps working
	a.PushBack(9)
	if got, ok := a.PopFront(); !ok || got != 9 {
		t.Errorf("expected (9, true), got (%d, %v)", got, ok)
	}
}

func TestDeque_Clear(t *testing.T) {
	d := queue.NewDeque[*int](4)
	for i := 0; i < 3; i++ {
		v := i
		d.PushBack(&v)
	}

	d.Clear()

	if d.Len() != 0 {
		t.Errorf("expected Len() = 0 after Clear, got %d", d.Len())
	}
	if d.Cap() != 4 {
		t.Errorf("expected Cap() = 4 after Clear, got %d", d.Cap())
	}
	if _, ok := d.PopFront(); ok {
		t.Error("expected PopFront() = false after Clear")
	}
}
