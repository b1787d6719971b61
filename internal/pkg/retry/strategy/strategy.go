package strategy

import "time"

// Strategy 重试策略
type Strategy interface {
	// Next 返回下一次重试的间隔，如果不需要继续重试，那么第二参数返回 false
	Next() (time.Duration, bool)
	// NextWithRetries 根据指定的已重试次数计算间隔，不修改内部状态
	NextWithRetries(retries int32) (time.Duration, bool)
	Report(err error) Strategy
}
