package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger creates a production logger writing at the given level
// (debug, info, warn, error).
func NewLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	cfg.Encoding = "console"

	return cfg.Build()
}
