// Package obslog wraps go.uber.org/zap behind a small interface so the
// core geometry and synthesis packages never import zap directly — only
// cmd/cagegen, which reports run progress, touches this package.
package obslog

import (
	"go.uber.org/zap"
)

// Logger is the run-level progress logging contract used by cmd/cagegen.
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

type zapLogger struct {
	z *zap.Logger
}

func (l *zapLogger) Info(msg string, fields ...zap.Field)  { l.z.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...zap.Field)  { l.z.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...zap.Field) { l.z.Error(msg, fields...) }

// New builds a console-friendly Logger suitable for a CLI run: level
// "info" and above, short caller-less console encoding.
func New() (Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{z: z}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
func (nopLogger) Error(string, ...zap.Field) {}

// NewNop returns a Logger that discards everything, for tests.
func NewNop() Logger { return nopLogger{} }
