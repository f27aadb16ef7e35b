package logger

import "github.com/user/storeshots/pkg/ports"

// NoopLogger discards everything. The library facade uses it when the
// caller passes no logger, and --quiet selects it in the CLI.
type NoopLogger struct{}

func NewNoop() *NoopLogger { return &NoopLogger{} }

func (NoopLogger) Debug(string, ...interface{}) {}
func (NoopLogger) Info(string, ...interface{})  {}
func (NoopLogger) Warn(string, ...interface{})  {}
func (NoopLogger) Error(string, ...interface{}) {}

func (l *NoopLogger) WithComponent(string) ports.Logger { return l }
func (l *NoopLogger) WithAsset(string) ports.Logger     { return l }

var _ ports.Logger = (*NoopLogger)(nil)
