package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds a production sugared logger tagged with the service
// name. Falls back to a nop logger if the config cannot be built.
func NewZapLogger(service string, level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return logger.Sugar().With("service", service)
}
