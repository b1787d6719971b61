package id_generator

// 64 位 ID 布局（高位到低位）：
// 1 位符号位(恒为0) | 41 位时间戳 | 2 位数据中心ID | 3 位机器ID | 2 位重启/回拨计数 | 3 位业务ID | 12 位序列号
const (
	// 位数分配常量
	timestampBits  = 41 // 时间戳位数
	datacenterBits = 2  // 数据中心ID位数
	machineBits    = 3  // 机器ID位数
	recountBits    = 2  // 重启/时钟回拨计数位数
	businessBits   = 3  // 业务ID位数
	sequenceBits   = 12 // 序列号位数

	// 位移常量
	sequenceShift   = 0
	businessShift   = sequenceBits
	recountShift    = businessShift + businessBits
	machineShift    = recountShift + recountBits
	datacenterShift = machineShift + machineBits
	timestampShift  = datacenterShift + datacenterBits

	// 掩码常量
	timestampMask  = (1 << timestampBits) - 1
	datacenterMask = (1 << datacenterBits) - 1
	machineMask    = (1 << machineBits) - 1
	recountMask    = (1 << recountBits) - 1
	businessMask   = (1 << businessBits) - 1
	sequenceMask   = (1 << sequenceBits) - 1
)

const (
	MaxDatacenterID = datacenterMask
	MaxMachineID    = machineMask
	MaxRecount      = recountMask
	MaxBusinessID   = businessMask
	MaxSequence     = sequenceMask
	// RecountModulo 重启计数回绕的模数
	RecountModulo = recountMask + 1
)

// Fields ID 中各个字段的值，Timestamp 为相对起始时间的毫秒数
type Fields struct {
	Timestamp    int64
	DatacenterID int64
	MachineID    int64
	Recount      int64
	BusinessID   int64
	Sequence     int64
}

// Assemble 组装 ID，各字段超出位宽的部分会被截断
func Assemble(f Fields) uint64 {
	return (uint64(f.Timestamp)&timestampMask)<<timestampShift |
		(uint64(f.DatacenterID)&datacenterMask)<<datacenterShift |
		(uint64(f.MachineID)&machineMask)<<machineShift |
		(uint64(f.Recount)&recountMask)<<recountShift |
		(uint64(f.BusinessID)&businessMask)<<businessShift |
		(uint64(f.Sequence)&sequenceMask)<<sequenceShift
}

// Disassemble 是 Assemble 的逆操作
func Disassemble(id uint64) Fields {
	return Fields{
		Timestamp:    int64((id >> timestampShift) & timestampMask),
		DatacenterID: int64((id >> datacenterShift) & datacenterMask),
		MachineID:    int64((id >> machineShift) & machineMask),
		Recount:      int64((id >> recountShift) & recountMask),
		BusinessID:   int64((id >> businessShift) & businessMask),
		Sequence:     int64((id >> sequenceShift) & sequenceMask),
	}
}

// MaskBusinessID 业务ID只保留低 3 位
func MaskBusinessID(businessID int64) int64 {
	return businessID & businessMask
}
