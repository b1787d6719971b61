package ioc

import (
	"context"
	"fmt"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go-snowflake/internal/pkg/database/metrics"
	"go-snowflake/internal/pkg/database/monitor"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/pkg/retry"
	"go-snowflake/internal/repository/dao"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitDB(l logger.Logger, registry prometheus.Registerer) *gorm.DB {
	type Config struct {
		DSN   string       `yaml:"dsn"`
		Retry retry.Config `yaml:"retry"`
	}
	cfg := Config{
		// 默认值
		DSN: "root:root@tcp(localhost:13316)/snowflake?charset=utf8mb4&parseTime=True&loc=Local",
		Retry: retry.Config{
			Type: "exponential",
			ExponentialBackoff: &retry.ExponentialBackoffConfig{
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     5 * time.Second,
				MaxRetries:      10,
			},
		},
	}
	if err := viper.UnmarshalKey("db.mysql", &cfg); err != nil {
		panic(err)
	}
	dsnCfg, err := mysqlDriver.ParseDSN(cfg.DSN)
	if err != nil {
		panic(fmt.Errorf("解析 DSN 失败: %w", err))
	}

	strategy, err := retry.NewRetry(cfg.Retry)
	if err != nil {
		panic(err)
	}
	var db *gorm.DB
	err = retry.Do(context.Background(), strategy, func() error {
		var er error
		db, er = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
		if er != nil {
			l.Warn("连接数据库失败，稍后重试", logger.String("addr", dsnCfg.Addr), logger.Error(er))
		}
		return er
	})
	if err != nil {
		panic(fmt.Errorf("连接数据库失败: %w", err))
	}
	l.Info("数据库连接成功", logger.String("addr", dsnCfg.Addr), logger.String("db", dsnCfg.DBName))

	if err = db.Use(metrics.NewGormMetricsPlugin(registry)); err != nil {
		panic(err)
	}
	if err = dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

func InitDBMonitor(db *gorm.DB, l logger.Logger) *monitor.Heartbeat {
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	return monitor.NewHeartbeatDBMonitor(sqlDB, l)
}
