package domain

// Recounter 某个 (数据中心, 机器) 上的重启/时钟回拨计数
type Recounter struct {
	DatacenterID int64
	MachineID    int64
	Recount      int64
	Ctime        int64
	Utime        int64
}
