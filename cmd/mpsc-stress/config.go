package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/randomizedcoder/go-mpsc/internal/stress"
)

// envPrefix is prepended to every environment override,
// e.g. MPSC_STRESS_PRODUCERS=16.
const envPrefix = "MPSC_STRESS"

type options struct {
	stress    stress.Config
	logLevel  logrus.Level
	logFormat string
}

// loadOptions parses args and the environment. Flags set on the command
// line win over the environment, which wins over defaults.
func loadOptions(args []string) (options, error) {
	def := stress.DefaultConfig()

	fs := pflag.NewFlagSet("mpsc-stress", pflag.ContinueOnError)
	fs.IntP("producers", "p", def.Producers, "number of producer goroutines")
	fs.IntP("messages", "n", def.Messages, "messages per producer (0 = until duration)")
	fs.DurationP("duration", "d", def.Duration, "stop producers after this long (0 = no limit)")
	fs.Int("report-every", def.ReportEvery, "receives between progress clock checks")
	fs.Duration("report-interval", def.ReportInterval, "minimum time between progress lines")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("log-format", "text", "log format (text, json)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return options{}, fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return options{}, err
	}
	format := v.GetString("log-format")
	if format != "text" && format != "json" {
		return options{}, fmt.Errorf("unknown log format %q", format)
	}

	opts := options{
		stress: stress.Config{
			Producers:      v.GetInt("producers"),
			Messages:       v.GetInt("messages"),
			Duration:       v.GetDuration("duration"),
			ReportEvery:    v.GetInt("report-every"),
			ReportInterval: v.GetDuration("report-interval"),
		},
		logLevel:  level,
		logFormat: format,
	}
	return opts, opts.stress.Validate()
}

func newLogger(opts options) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(opts.logLevel)
	if opts.logFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
