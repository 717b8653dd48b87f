package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]any

var log = mustBuild()

func mustBuild() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "timestamp"

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return built
}

func Info(message string, fields Fields) {
	log.Info(message, zapFields(fields, nil)...)
}

func Error(message string, err error, fields Fields) {
	log.Error(message, zapFields(fields, err)...)
}

func Sync() {
	_ = log.Sync()
}

func zapFields(fields Fields, err error) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+1)
	for key, value := range fields {
		out = append(out, zap.Any(key, value))
	}
	if err != nil {
		out = append(out, zap.Error(err))
	}
	return out
}
