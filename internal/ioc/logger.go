package ioc

import (
	"github.com/spf13/viper"
	"go-snowflake/internal/pkg/logger"
	"go.uber.org/zap"
)

func InitLogger() *logger.ZapLogger {
	type Config struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	}
	cfg := Config{Level: "info"}
	if err := viper.UnmarshalKey("log", &cfg); err != nil {
		panic(err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		panic(err)
	}
	zcfg.Level = level
	l, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.NewZapLogger(l)
}
