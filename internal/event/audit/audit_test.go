package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-snowflake/internal/domain"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/pkg/mq"
	eventmocks "go-snowflake/internal/service/event/mocks"
	"go.uber.org/mock/gomock"
)

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	evt := domain.Event{
		DatacenterID: 3,
		MachineID:    6,
		Type:         domain.EventTypeClockBackward,
		Brief:        "时钟回拨",
		Detail:       domain.EventDetail{Recount: 2, LastTimestamp: 1000, CurrentTimestamp: 900},
		Ctime:        1234,
	}
	key, value, err := encode(evt)
	require.NoError(t, err)
	assert.Equal(t, []byte("3:6"), key)
	assert.JSONEq(t, `{"datacenterId":3,"machineId":6,"type":2,"brief":"时钟回拨",
		"detail":{"recount":2,"lastTimestamp":1000,"currentTimestamp":900},"ctime":1234}`, string(value))

	got, err := decode(value)
	require.NoError(t, err)
	assert.Equal(t, evt, got)

	_, err = decode([]byte("not json"))
	assert.Error(t, err)
}

func TestConsumer_processMessage(t *testing.T) {
	t.Parallel()

	evt := domain.Event{DatacenterID: 1, MachineID: 1, Type: domain.EventTypeServiceStop, Brief: "服务停止"}
	_, value, err := encode(evt)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		value   []byte
		mock    func(ctrl *gomock.Controller) *eventmocks.MockRecorder
		wantErr bool
	}{
		{
			name:  "写入成功",
			value: value,
			mock: func(ctrl *gomock.Controller) *eventmocks.MockRecorder {
				r := eventmocks.NewMockRecorder(ctrl)
				r.EXPECT().Record(gomock.Any(), evt).Return(nil)
				return r
			},
		},
		{
			name:  "写入失败",
			value: value,
			mock: func(ctrl *gomock.Controller) *eventmocks.MockRecorder {
				r := eventmocks.NewMockRecorder(ctrl)
				r.EXPECT().Record(gomock.Any(), evt).Return(errors.New("mock db error"))
				return r
			},
			wantErr: true,
		},
		{
			name:  "消息格式错误",
			value: []byte("{"),
			mock: func(ctrl *gomock.Controller) *eventmocks.MockRecorder {
				return eventmocks.NewMockRecorder(ctrl)
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c := NewConsumer(nil, tc.mock(ctrl), nil, logger.NewNopLogger())
			err := c.processMessage(context.Background(), &mq.Message{Topic: EventTopic, Value: tc.value})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProducer_RecordBrokerDown(t *testing.T) {
	t.Parallel()

	// 端口 1 上没有 broker
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  "127.0.0.1:1",
		"message.timeout.ms": 1000,
	})
	require.NoError(t, err)
	defer p.Close()

	producer := NewProducer(p, logger.NewNopLogger())
	done := make(chan error, 1)
	go func() {
		done <- producer.Record(context.Background(), domain.Event{
			DatacenterID: 1,
			MachineID:    2,
			Type:         domain.EventTypeSequenceOverflow,
			Brief:        "序列号溢出",
		})
	}()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("broker 不可用时 Record 不应该阻塞")
	}
}

type fakeKafkaConsumer struct {
	msg       *kafka.Message
	committed []*kafka.Message
	seeks     []kafka.TopicPartition
}

func (f *fakeKafkaConsumer) SubscribeTopics(_ []string, _ kafka.RebalanceCb) error { return nil }

func (f *fakeKafkaConsumer) Assignment() ([]kafka.TopicPartition, error) { return nil, nil }

func (f *fakeKafkaConsumer) Pause(_ []kafka.TopicPartition) error { return nil }

func (f *fakeKafkaConsumer) Resume(_ []kafka.TopicPartition) error { return nil }

func (f *fakeKafkaConsumer) Poll(_ int) kafka.Event { return f.msg }

func (f *fakeKafkaConsumer) CommitMessage(m *kafka.Message) ([]kafka.TopicPartition, error) {
	f.committed = append(f.committed, m)
	return nil, nil
}

func (f *fakeKafkaConsumer) Seek(partition kafka.TopicPartition, _ int) error {
	f.seeks = append(f.seeks, partition)
	return nil
}

func (f *fakeKafkaConsumer) Close() error { return nil }

type healthyMonitor struct{}

func (healthyMonitor) Health() bool { return true }

func (healthyMonitor) Report(_ error) {}

func TestConsumer_Consume(t *testing.T) {
	t.Parallel()

	evt := domain.Event{DatacenterID: 1, MachineID: 1, Type: domain.EventTypeServiceStart, Brief: "服务启动"}
	key, value, err := encode(evt)
	require.NoError(t, err)
	topic := EventTopic
	tp := kafka.TopicPartition{Topic: &topic, Partition: 2, Offset: 42}

	testCases := []struct {
		name          string
		recordErr     error
		wantErr       bool
		wantCommitted int
		wantSeeks     []kafka.TopicPartition
	}{
		{
			name:          "写入成功提交位移",
			wantCommitted: 1,
		},
		{
			name:      "写入失败回退到当前消息",
			recordErr: errors.New("mock db error"),
			wantErr:   true,
			wantSeeks: []kafka.TopicPartition{tp},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := eventmocks.NewMockRecorder(ctrl)
			store.EXPECT().Record(gomock.Any(), evt).Return(tc.recordErr)
			fake := &fakeKafkaConsumer{msg: &kafka.Message{TopicPartition: tp, Key: key, Value: value}}
			c := &Consumer{consumer: fake, store: store, dbMonitor: healthyMonitor{}, log: logger.NewNopLogger()}

			err := c.Consume(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, fake.committed, tc.wantCommitted)
			assert.Equal(t, tc.wantSeeks, fake.seeks)
		})
	}
}
