package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/user/storeshots/pkg/ports"
)

// FileLogger writes untranslated, timestamped lines to a rotating log file:
//
//	2006-01-02T15:04:05.000Z [LEVEL] [component asset] message
type FileLogger struct {
	w     io.Writer
	mu    *sync.Mutex
	level ports.LogLevel
	scope scope
	now   func() time.Time
}

// NewFile creates a logger writing to path, rotated at maxSizeMB.
// The returned io.Closer must be closed to flush the file.
func NewFile(path string, level ports.LogLevel, maxSizeMB int) (*FileLogger, io.Closer) {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   false,
	}
	return NewWriter(lj, level), lj
}

// NewWriter creates a FileLogger on an arbitrary writer.
func NewWriter(w io.Writer, level ports.LogLevel) *FileLogger {
	return &FileLogger{w: w, mu: &sync.Mutex{}, level: level, now: time.Now}
}

// Debug logs a debug message.
func (l *FileLogger) Debug(msg string, args ...interface{}) {
	l.log(ports.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *FileLogger) Info(msg string, args ...interface{}) {
	l.log(ports.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *FileLogger) Warn(msg string, args ...interface{}) {
	l.log(ports.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *FileLogger) Error(msg string, args ...interface{}) {
	l.log(ports.LevelError, msg, args...)
}

// WithComponent returns a logger sharing the same file with a component tag.
func (l *FileLogger) WithComponent(component string) ports.Logger {
	c := *l
	c.scope.component = component
	return &c
}

// WithAsset returns a logger sharing the same file with an asset tag.
func (l *FileLogger) WithAsset(asset string) ports.Logger {
	c := *l
	c.scope.asset = asset
	return &c
}

func (l *FileLogger) log(level ports.LogLevel, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(l.now().UTC().Format("2006-01-02T15:04:05.000Z"))
	fmt.Fprintf(&b, " [%s]", strings.ToUpper(level.String()))
	if tag := l.scope.tag(); tag != "" {
		b.WriteString(" " + tag)
	}
	b.WriteByte(' ')
	fmt.Fprintf(&b, msg, args...)
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, b.String())
}

var _ ports.Logger = (*FileLogger)(nil)
