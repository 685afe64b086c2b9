package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init настраивает production-логгер и подменяет глобальный zap,
// чтобы zap.L()/zap.S() возвращали тот же экземпляр.
func Init() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
