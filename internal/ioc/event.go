package ioc

import (
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/meoying/dlock-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go-snowflake/internal/event/audit"
	"go-snowflake/internal/pkg/database/monitor"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/repository"
	"go-snowflake/internal/repository/dao"
	"go-snowflake/internal/service/event"
	"gorm.io/gorm"
)

// AuditKafka 没有开启 kafka 时两个字段都是 nil
type AuditKafka struct {
	Producer *kafka.Producer
	Consumer *kafka.Consumer
}

func InitEventService(db *gorm.DB) event.Service {
	return event.NewService(repository.NewEventRepository(dao.NewEventDAO(db)))
}

func InitAuditKafka() *AuditKafka {
	type Config struct {
		Enabled bool   `yaml:"enabled"`
		Addr    string `yaml:"addr"`
		GroupID string `yaml:"groupId"`
	}
	cfg := Config{GroupID: "snowflake_event"}
	if err := viper.UnmarshalKey("event.kafka", &cfg); err != nil {
		panic(err)
	}
	if !cfg.Enabled {
		return &AuditKafka{}
	}

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Addr,
	})
	if err != nil {
		panic(err)
	}
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.Addr,
		"group.id":           cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		panic(err)
	}
	return &AuditKafka{Producer: producer, Consumer: consumer}
}

// InitEventRecorder 开启 kafka 时事件先进 kafka 再由消费者落库，否则直接落库
func InitEventRecorder(svc event.Service, k *AuditKafka, registry prometheus.Registerer, l logger.Logger) event.Recorder {
	metricsRecorder := event.NewMetricsRecorder(registry)
	if k.Producer != nil {
		return event.NewCompositeRecorder(audit.NewProducer(k.Producer, l), metricsRecorder)
	}
	return event.NewCompositeRecorder(svc, metricsRecorder)
}

func InitAuditConsumer(k *AuditKafka, svc event.Service, dbMonitor monitor.DBMonitor, l logger.Logger) *audit.Consumer {
	if k.Consumer == nil {
		return nil
	}
	return audit.NewConsumer(k.Consumer, svc, dbMonitor, l)
}

func InitRetentionJob(svc event.Service, dclient dlock.Client, l logger.Logger) *event.RetentionJob {
	type Config struct {
		Retention time.Duration `yaml:"retention"`
	}
	cfg := Config{Retention: 30 * 24 * time.Hour}
	if err := viper.UnmarshalKey("event", &cfg); err != nil {
		panic(err)
	}
	return event.NewRetentionJob(svc, dclient, cfg.Retention, l)
}
