// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.SugaredLogger

func init() {
	// usable before Initialize is called, e.g. from tests
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the global logger. JSON output is meant for hosted
// deployments; the console encoder is for local runs.
func Initialize(jsonOutput bool) error {
	var zl *zap.Logger
	var err error

	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zl, err = cfg.Build()
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zl = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			zap.InfoLevel,
		))
	}
	if err != nil {
		return err
	}

	Logger = zl.Sugar()
	return nil
}

// Sync flushes buffered entries. Errors from syncing stdout are ignored.
func Sync() {
	_ = Logger.Sync()
}
