// Package logger provides the console, file and no-op ports.Logger
// implementations used by the CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/user/storeshots/pkg/ports"
)

const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// scope is the tag printed in front of a message: "[subject 01_home_ipad]".
type scope struct {
	component string
	asset     string
}

func (s scope) tag() string {
	parts := make([]string, 0, 2)
	if s.component != "" {
		parts = append(parts, s.component)
	}
	if s.asset != "" {
		parts = append(parts, s.asset)
	}
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ConsoleLogger prints translated messages. Info and debug go to out,
// warnings and errors to errOut.
type ConsoleLogger struct {
	out    io.Writer
	errOut io.Writer
	mu     *sync.Mutex
	level  ports.LogLevel
	color  bool
	scope  scope
}

// NewConsole logs to stdout/stderr, colored when stdout is a terminal.
func NewConsole(level ports.LogLevel) *ConsoleLogger {
	fd := os.Stdout.Fd()
	return NewConsoleWriter(os.Stdout, os.Stderr, level, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// NewConsoleWriter logs to the given writers.
func NewConsoleWriter(out, errOut io.Writer, level ports.LogLevel, color bool) *ConsoleLogger {
	return &ConsoleLogger{out: out, errOut: errOut, mu: &sync.Mutex{}, level: level, color: color}
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) { l.log(ports.LevelDebug, msg, args...) }
func (l *ConsoleLogger) Info(msg string, args ...interface{})  { l.log(ports.LevelInfo, msg, args...) }
func (l *ConsoleLogger) Warn(msg string, args ...interface{})  { l.log(ports.LevelWarn, msg, args...) }
func (l *ConsoleLogger) Error(msg string, args ...interface{}) { l.log(ports.LevelError, msg, args...) }

// WithComponent tags messages with a stage or subsystem name.
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	c := *l
	c.scope.component = component
	return &c
}

// WithAsset tags messages with the asset being generated.
func (l *ConsoleLogger) WithAsset(asset string) ports.Logger {
	c := *l
	c.scope.asset = asset
	return &c
}

func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	line := l10n.F(msg, args...)
	if tag := l.scope.tag(); tag != "" {
		if l.color {
			tag = colorCyan + tag + colorReset
		}
		line = tag + " " + line
	}

	if l.color {
		switch level {
		case ports.LevelDebug:
			line = colorGray + line + colorReset
		case ports.LevelWarn:
			line = colorYellow + line + colorReset
		case ports.LevelError:
			line = colorRed + line + colorReset
		}
	}

	w := l.out
	if level >= ports.LevelWarn {
		w = l.errOut
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(w, line)
}

var _ ports.Logger = (*ConsoleLogger)(nil)
