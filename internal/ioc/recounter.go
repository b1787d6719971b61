package ioc

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/repository"
	rediscache "go-snowflake/internal/repository/cache/redis"
	"go-snowflake/internal/repository/dao"
	"go-snowflake/internal/service/recounter"
	"gorm.io/gorm"
)

const (
	recounterStorageMySQL = "mysql"
	recounterStorageRedis = "redis"
)

// InitRecounterService 根据 recounter.storage 选择重启计数的存储
func InitRecounterService(db *gorm.DB, rdb *redis.Client, l logger.Logger) recounter.Service {
	type Config struct {
		Storage string `yaml:"storage"`
	}
	cfg := Config{Storage: recounterStorageMySQL}
	if err := viper.UnmarshalKey("recounter", &cfg); err != nil {
		panic(err)
	}

	var repo repository.RecounterRepository
	switch cfg.Storage {
	case recounterStorageMySQL:
		repo = repository.NewRecounterRepository(dao.NewRecounterDAO(db))
	case recounterStorageRedis:
		repo = repository.NewRecounterCacheRepository(rediscache.NewRecounterCache(rdb))
	default:
		panic(fmt.Errorf("未知的重启计数存储: %s", cfg.Storage))
	}
	l.Info("重启计数存储", logger.String("storage", cfg.Storage))
	return recounter.NewService(repo, l)
}
