// Package logger provides structured logging for the whole application
// using the Uber zap logging library.
package logger

import (
	"errors"
	"os"

	"go.uber.org/zap"
)

// Log is the global SugaredLogger instance. It must be initialized via Init()
// before use; packages log through it instead of carrying a logger around.
var Log = zap.NewNop().Sugar()

// Init builds the global logger at the given level.
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes any buffered log entries. Call on shutdown.
func Sync() error {
	if err := Log.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}

	return nil
}
