package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"firestige.xyz/encounter/internal/config"
)

type Logger interface {
	Print(args ...interface{})
	Printf(format string, args ...interface{})

	Trace(args ...interface{})
	Tracef(format string, args ...interface{})

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})

	Panic(args ...interface{})
	Panicf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger

	IsTraceEnabled() bool
	IsDebugEnabled() bool
	IsInfoEnabled() bool
}

const (
	defaultPattern = "%time [%level] %field %msg%n"
	defaultTime    = "2006-01-02 15:04:05.000"
)

var current atomic.Pointer[entryLogger]

func init() {
	l := logrus.New()
	l.SetFormatter(&formatter{pattern: defaultPattern, time: defaultTime})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stdout)
	current.Store(newEntryLogger(l))
}

// GetLogger returns the process logger. It is never nil; before Init it
// writes info and above to stdout.
func GetLogger() Logger {
	return current.Load()
}

// Init replaces the process logger. It may be called again on reload.
func Init(cfg config.LogConfig) error {
	l, err := newLogrus(cfg, os.Stdout)
	if err != nil {
		return err
	}
	current.Store(newEntryLogger(l))
	return nil
}

func newLogrus(cfg config.LogConfig, stdout io.Writer) (*logrus.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	l := logrus.New()
	l.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timeLayout(cfg.Time)})
	case "text":
		pattern := cfg.Pattern
		if pattern == "" {
			pattern = defaultPattern
		}
		l.SetFormatter(&formatter{pattern: pattern, time: timeLayout(cfg.Time)})
	default:
		return nil, fmt.Errorf("unsupported log format: %s (must be json or text)", cfg.Format)
	}

	// stdout is always included
	out := NewMultiWriter().Add(stdout)
	if cfg.Outputs.File.Enabled {
		if _, err := out.AddFileAppender(cfg.Outputs.File); err != nil {
			return nil, fmt.Errorf("failed to create file output: %w", err)
		}
	}
	l.SetOutput(out)

	return l, nil
}

// parseLevel accepts the four configured levels only.
func parseLevel(levelStr string) (logrus.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("unknown level: %s", levelStr)
	}
}

func timeLayout(layout string) string {
	if layout == "" {
		return defaultTime
	}
	return layout
}
