package main

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger keeps diagnostics away from the prompts: nothing is logged unless
// a log file or verbose output was requested.
func NewLogger(logFilename string, verbose bool) (*zap.Logger, error) {
	if logFilename == "" && !verbose {
		return zap.NewNop(), nil
	}

	var config zap.Config
	if verbose {
		config = zap.NewDevelopmentConfig()
		config.OutputPaths = []string{"stderr"}
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{}
	}
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)

	if logFilename != "" {
		absPath, err := filepath.Abs(logFilename)
		if err != nil {
			return nil, fmt.Errorf("error getting abs path of %s: %w", logFilename, err)
		}
		config.OutputPaths = append(config.OutputPaths, absPath)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}
	return logger, nil
}
