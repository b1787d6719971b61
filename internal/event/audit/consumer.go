package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go-snowflake/internal/pkg/database/monitor"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/pkg/mq"
	"go-snowflake/internal/service/event"
)

const (
	defaultSleepTime = 2 * time.Second
	poll             = 1000
)

// kafkaConsumer *kafka.Consumer 中用到的方法
type kafkaConsumer interface {
	SubscribeTopics(topics []string, rebalanceCb kafka.RebalanceCb) error
	Assignment() ([]kafka.TopicPartition, error)
	Pause(partitions []kafka.TopicPartition) error
	Resume(partitions []kafka.TopicPartition) error
	Poll(timeoutMs int) kafka.Event
	CommitMessage(m *kafka.Message) ([]kafka.TopicPartition, error)
	Seek(partition kafka.TopicPartition, ignoredTimeoutMs int) error
	Close() error
}

// Consumer 消费 kafka 里的审计事件并写入数据库
type Consumer struct {
	consumer  kafkaConsumer
	store     event.Recorder
	dbMonitor monitor.DBMonitor
	log       logger.Logger
}

func NewConsumer(consumer *kafka.Consumer, store event.Recorder, dbMonitor monitor.DBMonitor, log logger.Logger) *Consumer {
	return &Consumer{
		consumer:  consumer,
		store:     store,
		dbMonitor: dbMonitor,
		log:       log,
	}
}

// Start 在后台协程中开始消费，ctx 取消时退出
func (c *Consumer) Start(ctx context.Context) error {
	if err := c.consumer.SubscribeTopics([]string{EventTopic}, nil); err != nil {
		return fmt.Errorf("订阅主题 %s 失败: %w", EventTopic, err)
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				c.log.Info("审计事件消费者因上下文取消而停止")
				return
			default:
				if err := c.Consume(ctx); err != nil {
					c.log.Error("消费消息失败", logger.Error(err))
				}
			}
		}
	}()
	c.log.Info("审计事件消费者已启动", logger.String("topic", EventTopic))
	return nil
}

func (c *Consumer) Consume(ctx context.Context) error {
	// 数据库不健康时暂停分区，避免消息消费了却写不进去
	if !c.dbMonitor.Health() {
		assigned, err := c.consumer.Assignment()
		if err != nil {
			return fmt.Errorf("获取消费者已分配分区失败: %w", err)
		}
		if len(assigned) > 0 {
			if err := c.consumer.Pause(assigned); err != nil {
				return fmt.Errorf("暂停分区失败: %w", err)
			}
			time.Sleep(defaultSleepTime)
			// 下一轮还会再检查一次
			if err := c.consumer.Resume(assigned); err != nil {
				return fmt.Errorf("恢复分区失败: %w", err)
			}
		}
		return nil
	}

	ev := c.consumer.Poll(poll)
	if ev == nil {
		return nil
	}

	switch e := ev.(type) {
	case *kafka.Message:
		msg := &mq.Message{
			Topic:     *e.TopicPartition.Topic,
			Partition: int64(e.TopicPartition.Partition),
			Offset:    int64(e.TopicPartition.Offset),
			Key:       e.Key,
			Value:     e.Value,
		}
		if err := c.processMessage(ctx, msg); err != nil {
			c.log.Error("处理消息失败",
				logger.Error(err),
				logger.String("topic", msg.Topic),
				logger.Int64("partition", msg.Partition),
				logger.Int64("offset", msg.Offset),
			)
			// 回退到这条消息，下一次 Poll 重新投递
			if seekErr := c.consumer.Seek(e.TopicPartition, 0); seekErr != nil {
				return fmt.Errorf("回退消费位置失败: %w", errors.Join(err, seekErr))
			}
			return err
		}
		if _, err := c.consumer.CommitMessage(e); err != nil {
			return fmt.Errorf("提交消息失败: %w", err)
		}
	case kafka.Error:
		return fmt.Errorf("kafka错误: %w", e)
	}
	return nil
}

func (c *Consumer) processMessage(ctx context.Context, msg *mq.Message) error {
	evt, err := decode(msg.Value)
	if err != nil {
		return err
	}
	return c.store.Record(ctx, evt)
}

func (c *Consumer) Stop() error {
	return c.consumer.Close()
}
