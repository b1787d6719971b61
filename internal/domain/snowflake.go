package domain

import "strconv"

// SnowflakeID 解析后的 ID，Timestamp 为绝对毫秒时间戳
type SnowflakeID struct {
	ID           uint64
	Timestamp    int64
	DatacenterID int64
	MachineID    int64
	Recount      int64
	BusinessID   int64
	Sequence     int64
}

func (s SnowflakeID) String() string {
	return strconv.FormatUint(s.ID, 10)
}
