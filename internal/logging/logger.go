//go:build !tinygo

// Package logging builds the host zap logger and adapts it to hal.Logger.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnvVar controls verbosity when no level flag is given. When both are
// empty logging is silent.
const LevelEnvVar = "DRAWBOT_LOG_LEVEL"

// New returns a console logger writing to stderr at level. An empty level
// falls back to LevelEnvVar, then to a no-op logger.
func New(level string) (*zap.Logger, error) {
	if level == "" {
		level = os.Getenv(LevelEnvVar)
	}
	if level == "" {
		return zap.NewNop(), nil
	}

	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// HALLogger writes hal.Logger lines to a zap logger at info level. Lines
// of the form "component: message" are split into a component field.
type HALLogger struct {
	L *zap.Logger
}

func (h HALLogger) WriteLineString(s string) {
	if h.L == nil {
		return
	}
	s = strings.TrimRight(s, "\r\n")
	if comp, msg, ok := strings.Cut(s, ": "); ok && comp != "" && !strings.ContainsAny(comp, " \t") {
		h.L.Info(msg, zap.String("component", comp))
		return
	}
	h.L.Info(s)
}

func (h HALLogger) WriteLineBytes(b []byte) {
	h.WriteLineString(string(b))
}
