package dbg

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tomas-kadlec/gazelab/pkg/utility"
)

func NewDevLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true

	return build(cfg)
}

func NewProdLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true

	return build(cfg)
}

func build(cfg zap.Config) *zap.Logger {
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	// Every line of a run carries the same run id, so reports and logs
	// can be matched after the fact.
	return logger.With(zap.String("run_id", utility.GetRunID().String()))
}
