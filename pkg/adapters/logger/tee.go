package logger

import "github.com/user/storeshots/pkg/ports"

// Tee fans every message out to several loggers.
type Tee struct {
	loggers []ports.Logger
}

// NewTee creates a logger writing to all of loggers.
func NewTee(loggers ...ports.Logger) *Tee {
	return &Tee{loggers: loggers}
}

// Debug logs a debug message to every logger.
func (t *Tee) Debug(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Debug(msg, args...)
	}
}

// Info logs an informational message to every logger.
func (t *Tee) Info(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Info(msg, args...)
	}
}

// Warn logs a warning message to every logger.
func (t *Tee) Warn(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Warn(msg, args...)
	}
}

// Error logs an error message to every logger.
func (t *Tee) Error(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Error(msg, args...)
	}
}

// WithComponent returns a Tee of the component loggers.
func (t *Tee) WithComponent(component string) ports.Logger {
	children := make([]ports.Logger, len(t.loggers))
	for i, l := range t.loggers {
		children[i] = l.WithComponent(component)
	}
	return &Tee{loggers: children}
}

// WithAsset returns a Tee of the asset loggers.
func (t *Tee) WithAsset(asset string) ports.Logger {
	children := make([]ports.Logger, len(t.loggers))
	for i, l := range t.loggers {
		children[i] = l.WithAsset(asset)
	}
	return &Tee{loggers: children}
}

var _ ports.Logger = (*Tee)(nil)
