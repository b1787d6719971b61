package audit

import (
	"context"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go-snowflake/internal/domain"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/service/event"
)

var _ event.Recorder = (*Producer)(nil)

// Producer 把审计事件发到 kafka，由 Consumer 异步落库
// Record 只负责入队，不等待 broker 确认，投递结果在后台协程里记录日志
type Producer struct {
	producer *kafka.Producer
	topic    string
	l        logger.Logger
}

func NewProducer(producer *kafka.Producer, l logger.Logger) *Producer {
	p := &Producer{producer: producer, topic: EventTopic, l: l}
	go p.handleDeliveryReports()
	return p
}

func (p *Producer) Record(_ context.Context, evt domain.Event) error {
	key, value, err := encode(evt)
	if err != nil {
		return err
	}
	// 投递报告走 producer.Events()
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &p.topic,
			Partition: kafka.PartitionAny,
		},
		Key:   key,
		Value: value,
	}, nil)
	if err != nil {
		return fmt.Errorf("发送消息到kafka失败: %w", err)
	}
	return nil
}

// handleDeliveryReports producer 关闭后 Events 通道关闭，协程退出
func (p *Producer) handleDeliveryReports() {
	for e := range p.producer.Events() {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				p.l.Warn("审计事件投递失败",
					logger.String("key", string(ev.Key)),
					logger.Error(ev.TopicPartition.Error))
			}
		case kafka.Error:
			p.l.Warn("kafka producer 错误", logger.Error(ev))
		}
	}
}
