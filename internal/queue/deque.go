package queue

// minCapacity is the capacity allocated by the first push into a zero Deque.
const minCapacity = 16

// Deque is an unbounded FIFO queue backed by a growable ring buffer.
//
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	buf  []T
	mask uint64

	head uint64 // next position to pop
	tail uint64 // next position to push
}

// NewDeque creates a Deque with room for size items before it must grow.
// Size will be rounded up to the next power of 2.
func NewDeque[T any](size int) *Deque[T] {
	d := &Deque[T]{}
	if size > 0 {
		d.alloc(roundPow2(size))
	}
	return d
}

func roundPow2(size int) uint64 {
	n := uint64(1)
	for n < uint64(size) {
		n <<= 1
	}
	return n
}

func (d *Deque[T]) alloc(n uint64) {
	d.buf = make([]T, n)
	d.mask = n - 1
}

// PushBack appends an item to the back of the deque.
// It never fails; a full deque doubles its capacity.
func (d *Deque[T]) PushBack(v T) {
	if d.tail-d.head == uint64(len(d.buf)) {
		d.grow()
	}
	d.buf[d.tail&d.mask] = v
	d.tail++
}

// grow doubles the buffer, unwrapping the items so they start at index 0.
func (d *Deque[T]) grow() {
	n := uint64(len(d.buf)) << 1
	if n == 0 {
		n = minCapacity
	}
	buf := make([]T, n)
	size := d.tail - d.head
	if size > 0 {
		h := d.head & d.mask
		c := copy(buf, d.buf[h:])
		if uint64(c) < size {
			copy(buf[c:], d.buf[:size-uint64(c)])
		}
	}
	d.buf = buf
	d.mask = n - 1
	d.head = 0
	d.tail = size
}

// PopFront removes and returns the item at the front of the deque.
// Returns false if the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.head == d.tail {
		return zero, false
	}
	i := d.head & d.mask
	v := d.buf[i]
	// release the reference held by the slot
	d.buf[i] = zero
	d.head++
	return v, true
}

// Len returns the number of items in the deque.
func (d *Deque[T]) Len() int {
	return int(d.tail - d.head)
}

// Cap returns the number of items the deque can hold before growing.
func (d *Deque[T]) Cap() int {
	return len(d.buf)
}

// Swap exchanges the contents of d and other, including their storage.
// It runs in constant time regardless of how many items either holds.
func (d *Deque[T]) Swap(other *Deque[T]) {
	*d, *other = *other, *d
}

// Clear removes all items, keeping the allocated storage.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.tail = 0
}
