package snowflake

type GenerateIDReq struct {
	BusinessID *int64 `form:"bid" binding:"required"` // 业务ID，只使用低 3 位
}

type GenerateIDsReq struct {
	BusinessID *int64 `form:"bid" binding:"required"`
	Count      int    `form:"count" binding:"required,min=1,max=1000"`
}

type ParseIDReq struct {
	ID string `form:"id" binding:"required"`
}

type ListEventsReq struct {
	Limit int `form:"limit" binding:"min=0,max=1000"` // 0 表示使用默认值
}

// SnowflakeID ID 及其解析结果，ID 用字符串避免前端精度丢失
type SnowflakeID struct {
	ID           string `json:"id"`
	Timestamp    int64  `json:"timestamp"`    // 毫秒时间戳
	DatacenterID int64  `json:"datacenterId"` // 数据中心ID
	MachineID    int64  `json:"machineId"`    // 机器ID
	Recount      int64  `json:"recount"`      // 重启计数
	BusinessID   int64  `json:"businessId"`   // 业务ID
	Sequence     int64  `json:"sequence"`     // 序列号
}

type GenerateIDsResp struct {
	IDs []SnowflakeID `json:"ids"`
}

type Recounter struct {
	DatacenterID int64 `json:"datacenterId"`
	MachineID    int64 `json:"machineId"`
	Recount      int64 `json:"recount"`
	Ctime        int64 `json:"ctime"`
	Utime        int64 `json:"utime"`
}

type Event struct {
	ID               int64  `json:"id"`
	Type             string `json:"type"`
	Brief            string `json:"brief"`
	Recount          int64  `json:"recount"`
	LastTimestamp    int64  `json:"lastTimestamp,omitempty"`
	CurrentTimestamp int64  `json:"currentTimestamp,omitempty"`
	Error            string `json:"error,omitempty"`
	Ctime            int64  `json:"ctime"`
}

type ListEventsResp struct {
	Events []Event `json:"events"`
}
