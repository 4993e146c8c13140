package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// NewLogger creates a zap logger from config
func NewLogger(conf LogConfig) *zap.Logger {
	var zapConf zap.Config
	if conf.Development {
		zapConf = zap.NewDevelopmentConfig()
	} else {
		zapConf = zap.NewProductionConfig()
		zapConf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level := zap.NewAtomicLevel()
	err := level.UnmarshalText([]byte(conf.Level))
	if err != nil {
		panic(err)
	}
	zapConf.Level = level

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
