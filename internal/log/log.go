// Package log holds the process-wide zap logger.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	logger *zap.SugaredLogger
)

// Init builds the process logger. Debug selects zap's development config.
// Both configurations write to stderr so stdout stays free for reports
// and the stdio transport.
func Init(debug bool) error {
	var (
		z   *zap.Logger
		err error
	)
	if debug {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("log: build zap logger: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	logger = z.Sugar()
	return nil
}

// Set replaces the process logger, mainly for tests.
func Set(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// L returns the process logger, falling back to a no-op logger before Init.
func L() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return zap.NewNop().Sugar()
	}
	return logger
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L().Sync()
}
