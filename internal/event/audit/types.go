package audit

import (
	"encoding/json"
	"fmt"

	"go-snowflake/internal/domain"
)

const EventTopic = "snowflake_event"

// Message 投递到 kafka 的审计事件
type Message struct {
	DatacenterID int64              `json:"datacenterId"`
	MachineID    int64              `json:"machineId"`
	Type         int                `json:"type"`
	Brief        string             `json:"brief"`
	Detail       domain.EventDetail `json:"detail"`
	Ctime        int64              `json:"ctime"`
}

func newMessage(evt domain.Event) Message {
	return Message{
		DatacenterID: evt.DatacenterID,
		MachineID:    evt.MachineID,
		Type:         evt.Type.ToInt(),
		Brief:        evt.Brief,
		Detail:       evt.Detail,
		Ctime:        evt.Ctime,
	}
}

func (m Message) toDomain() domain.Event {
	return domain.Event{
		DatacenterID: m.DatacenterID,
		MachineID:    m.MachineID,
		Type:         domain.EventType(m.Type),
		Brief:        m.Brief,
		Detail:       m.Detail,
		Ctime:        m.Ctime,
	}
}

// messageKey 同一台机器的事件落在同一个分区，保证顺序
func messageKey(datacenterID, machineID int64) []byte {
	return []byte(fmt.Sprintf("%d:%d", datacenterID, machineID))
}

func encode(evt domain.Event) (key, value []byte, err error) {
	value, err = json.Marshal(newMessage(evt))
	if err != nil {
		return nil, nil, fmt.Errorf("序列化审计事件失败: %w", err)
	}
	return messageKey(evt.DatacenterID, evt.MachineID), value, nil
}

func decode(value []byte) (domain.Event, error) {
	var msg Message
	if err := json.Unmarshal(value, &msg); err != nil {
		return domain.Event{}, fmt.Errorf("反序列化审计事件失败: %w", err)
	}
	return msg.toDomain(), nil
}
