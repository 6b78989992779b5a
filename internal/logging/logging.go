// Package logging builds the zap loggers used across cardview.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger, raised to debug level when verbose is
// set. Callers own Sync.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Nop is the default for library callers that did not ask for logging.
func Nop() *zap.Logger {
	return zap.NewNop()
}
