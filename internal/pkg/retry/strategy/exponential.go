package strategy

import (
	"sync/atomic"
	"time"
)

var _ Strategy = (*ExponentialBackoffRetryStrategy)(nil)

// ExponentialBackoffRetryStrategy 指数退避重试策略，间隔达到 maxInterval 后不再增长
type ExponentialBackoffRetryStrategy struct {
	initialInterval time.Duration
	maxInterval     time.Duration
	// 最大重试次数，0 或负数表示无限重试
	maxRetries int32
	retries    atomic.Int32
}

func NewExponentialBackoffRetryStrategy(initialInterval, maxInterval time.Duration, maxRetries int32) *ExponentialBackoffRetryStrategy {
	return &ExponentialBackoffRetryStrategy{initialInterval: initialInterval, maxInterval: maxInterval, maxRetries: maxRetries}
}

func (e *ExponentialBackoffRetryStrategy) NextWithRetries(retries int32) (time.Duration, bool) {
	if e.maxRetries > 0 && retries > e.maxRetries {
		return 0, false
	}
	interval := e.initialInterval
	for i := int32(1); i < retries; i++ {
		interval *= 2
		// 溢出或超过最大间隔
		if interval <= 0 || interval >= e.maxInterval {
			return e.maxInterval, true
		}
	}
	if interval > e.maxInterval {
		return e.maxInterval, true
	}
	return interval, true
}

func (e *ExponentialBackoffRetryStrategy) Next() (time.Duration, bool) {
	return e.NextWithRetries(e.retries.Add(1))
}

func (e *ExponentialBackoffRetryStrategy) Report(_ error) Strategy {
	return e
}
