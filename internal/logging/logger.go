// Package logging builds the zap logger used for diagnostics. Logs go to
// stderr only; stdout carries match output.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "MINIGREP_LOG_LEVEL"

// DefaultLevel keeps a normal run silent.
const DefaultLevel = zapcore.WarnLevel

// New returns a console logger writing to w at the given level. An empty
// level selects DefaultLevel; an unknown one also falls back to it and the
// bad value is reported through the returned logger.
func New(w io.Writer, level string) *zap.Logger {
	lvl := DefaultLevel
	var parseErr error
	if level != "" {
		lvl, parseErr = zapcore.ParseLevel(level)
		if parseErr != nil {
			lvl = DefaultLevel
		}
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		lvl,
	)
	logger := zap.New(core).Named("minigrep")

	if parseErr != nil {
		logger.Warn("invalid log level, using default",
			zap.String("env", LevelEnv),
			zap.String("value", level),
			zap.Stringer("default", DefaultLevel),
		)
	}
	return logger
}
