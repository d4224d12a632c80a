package log

import (
	"github.com/sirupsen/logrus"
)

// entryLogger is the Logger handed out by GetLogger. Fields accumulate on the wrapped
// entry; the level and outputs belong to the shared *logrus.Logger behind it.
type entryLogger struct {
	entry *logrus.Entry
}

func newEntryLogger(l *logrus.Logger) *entryLogger {
	return &entryLogger{entry: logrus.NewEntry(l)}
}

func (l *entryLogger) at(level logrus.Level, args []interface{}) {
	l.entry.Log(level, args...)
}

func (l *entryLogger) atf(level logrus.Level, format string, args []interface{}) {
	l.entry.Logf(level, format, args...)
}

func (l *entryLogger) Print(args ...interface{})                 { l.entry.Print(args...) }
func (l *entryLogger) Printf(format string, args ...interface{}) { l.entry.Printf(format, args...) }

func (l *entryLogger) Trace(args ...interface{})                 { l.at(logrus.TraceLevel, args) }
func (l *entryLogger) Tracef(format string, args ...interface{}) { l.atf(logrus.TraceLevel, format, args) }
func (l *entryLogger) Debug(args ...interface{})                 { l.at(logrus.DebugLevel, args) }
func (l *entryLogger) Debugf(format string, args ...interface{}) { l.atf(logrus.DebugLevel, format, args) }
func (l *entryLogger) Info(args ...interface{})                  { l.at(logrus.InfoLevel, args) }
func (l *entryLogger) Infof(format string, args ...interface{})  { l.atf(logrus.InfoLevel, format, args) }
func (l *entryLogger) Warn(args ...interface{})                  { l.at(logrus.WarnLevel, args) }
func (l *entryLogger) Warnf(format string, args ...interface{})  { l.atf(logrus.WarnLevel, format, args) }
func (l *entryLogger) Error(args ...interface{})                 { l.at(logrus.ErrorLevel, args) }
func (l *entryLogger) Errorf(format string, args ...interface{}) { l.atf(logrus.ErrorLevel, format, args) }

// Fatal and Panic go through logrus so it can exit or panic after writing.
func (l *entryLogger) Fatal(args ...interface{})                 { l.entry.Fatal(args...) }
func (l *entryLogger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }
func (l *entryLogger) Panic(args ...interface{})                 { l.entry.Panic(args...) }
func (l *entryLogger) Panicf(format string, args ...interface{}) { l.entry.Panicf(format, args...) }

func (l *entryLogger) WithField(field string, value interface{}) Logger {
	return &entryLogger{entry: l.entry.WithField(field, value)}
}

// WithFields returns l itself for an empty map.
func (l *entryLogger) WithFields(fields map[string]interface{}) Logger {
	if len(fields) == 0 {
		return l
	}
	return &entryLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithError returns l itself for a nil error, so callers may chain it unconditionally.
func (l *entryLogger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return &entryLogger{entry: l.entry.WithError(err)}
}

func (l *entryLogger) enabled(level logrus.Level) bool {
	return l.entry.Logger.IsLevelEnabled(level)
}

func (l *entryLogger) IsTraceEnabled() bool { return l.enabled(logrus.TraceLevel) }
func (l *entryLogger) IsDebugEnabled() bool { return l.enabled(logrus.DebugLevel) }
func (l *entryLogger) IsInfoEnabled() bool  { return l.enabled(logrus.InfoLevel) }
