package errs

import "errors"

var (
	ErrInvalidParameter = errors.New("参数错误")

	// ErrConfiguration 生成器配置错误，启动时致命，不重试
	ErrConfiguration       = errors.New("配置错误")
	ErrInvalidDatacenterID = errors.New("datacenter_id 超出范围")
	ErrInvalidMachineID    = errors.New("machine_id 超出范围")

	// ErrRecounterStore 重启计数存储读写失败
	ErrRecounterStore    = errors.New("重启计数存储失败")
	ErrRecounterNotFound = errors.New("重启计数记录不存在")
)
