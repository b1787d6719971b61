package ioc

import (
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/service/event"
)

func InitCron(job *event.RetentionJob, l logger.Logger) *cron.Cron {
	type Config struct {
		// 带秒的 cron 表达式
		RetentionSpec string `yaml:"retentionSpec"`
	}
	cfg := Config{RetentionSpec: "0 0 3 * * *"}
	if err := viper.UnmarshalKey("cron", &cfg); err != nil {
		panic(err)
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddJob(cfg.RetentionSpec, job); err != nil {
		panic(err)
	}
	l.Info("注册事件清理任务", logger.String("spec", cfg.RetentionSpec))
	return c
}
