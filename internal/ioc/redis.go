package ioc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go-snowflake/internal/pkg/redis/metrics"
)

func InitRedisClient(registry prometheus.Registerer) *redis.Client {
	type Config struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	}
	cfg := Config{Addr: "localhost:6379"}
	if err := viper.UnmarshalKey("redis", &cfg); err != nil {
		panic(err)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return metrics.WithMetrics(client, registry)
}
