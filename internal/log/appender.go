package log

import (
	"fmt"
	"io"

	"gopkg.in/natefinch/lumberjack.v2"

	"firestige.xyz/encounter/internal/config"
)

type MultiWriter struct {
	writers []io.Writer
}

func (m *MultiWriter) Write(p []byte) (n int, err error) {
	for _, w := range m.writers {
		_, e := w.Write(p)
		if e != nil {
			err = e
		}
	}
	return len(p), err
}

func (m *MultiWriter) Add(writer io.Writer) *MultiWriter {
	m.writers = append(m.writers, writer)
	return m
}

// AddFileAppender appends a rotating file writer.
func (m *MultiWriter) AddFileAppender(fc config.FileOutputConfig) (*MultiWriter, error) {
	if fc.Path == "" {
		return m, fmt.Errorf("file output requires 'path' field")
	}
	writer := &lumberjack.Logger{
		Filename:   fc.Path,
		MaxSize:    fc.Rotation.MaxSizeMB,  // megabytes
		MaxBackups: fc.Rotation.MaxBackups, // number of backups
		MaxAge:     fc.Rotation.MaxAgeDays, // days
		Compress:   fc.Rotation.Compress,   // compress the backups
	}
	m.writers = append(m.writers, writer)
	return m, nil
}

func NewMultiWriter() *MultiWriter {
	return &MultiWriter{writers: make([]io.Writer, 0)}
}
