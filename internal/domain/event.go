package domain

type EventType int

const (
	EventTypeServiceStart     EventType = 0 // 服务启动
	EventTypeServiceStop      EventType = 1 // 服务停止
	EventTypeClockBackward    EventType = 2 // 时钟回拨
	EventTypeConfigChange     EventType = 3 // 配置变更
	EventTypeSequenceOverflow EventType = 4 // 序列号溢出
	EventTypeError            EventType = 5 // 错误
)

func (e EventType) String() string {
	switch e {
	case EventTypeServiceStart:
		return "SERVICE_START"
	case EventTypeServiceStop:
		return "SERVICE_STOP"
	case EventTypeClockBackward:
		return "CLOCK_BACKWARD"
	case EventTypeConfigChange:
		return "CONFIG_CHANGE"
	case EventTypeSequenceOverflow:
		return "SEQUENCE_OVERFLOW"
	case EventTypeError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (e EventType) ToInt() int {
	return int(e)
}

// Event 生成器的审计事件
type Event struct {
	ID           int64
	DatacenterID int64
	MachineID    int64
	Type         EventType
	Brief        string
	Detail       EventDetail
	Ctime        int64
}

type EventDetail struct {
	Recount          int64  `json:"recount"`
	LastTimestamp    int64  `json:"lastTimestamp,omitempty"`
	CurrentTimestamp int64  `json:"currentTimestamp,omitempty"`
	Error            string `json:"error,omitempty"`
}
