package retry

import (
	"context"
	"fmt"
	"time"

	"go-snowflake/internal/pkg/retry/strategy"
)

// Config 重试配置
type Config struct {
	Type string `json:"type" yaml:"type"`
	// 固定间隔
	FixedInterval *FixedIntervalConfig `json:"fixedInterval" yaml:"fixedInterval"`
	// 指数退避
	ExponentialBackoff *ExponentialBackoffConfig `json:"exponentialBackoff" yaml:"exponentialBackoff"`
}

type FixedIntervalConfig struct {
	MaxRetries int32         `json:"maxRetries" yaml:"maxRetries"`
	Interval   time.Duration `json:"interval" yaml:"interval"`
}

type ExponentialBackoffConfig struct {
	InitialInterval time.Duration `json:"initialInterval" yaml:"initialInterval"`
	MaxInterval     time.Duration `json:"maxInterval" yaml:"maxInterval"`
	MaxRetries      int32         `json:"maxRetries" yaml:"maxRetries"`
}

func NewRetry(cfg Config) (strategy.Strategy, error) {
	switch cfg.Type {
	case "fixed":
		if cfg.FixedInterval == nil {
			return nil, fmt.Errorf("缺少固定间隔重试配置")
		}
		return strategy.NewFixedIntervalRetryStrategy(cfg.FixedInterval.MaxRetries, cfg.FixedInterval.Interval), nil
	case "exponential":
		if cfg.ExponentialBackoff == nil {
			return nil, fmt.Errorf("缺少指数退避重试配置")
		}
		return strategy.NewExponentialBackoffRetryStrategy(
			cfg.ExponentialBackoff.InitialInterval,
			cfg.ExponentialBackoff.MaxInterval,
			cfg.ExponentialBackoff.MaxRetries), nil
	default:
		return nil, fmt.Errorf("未知的重试类型: %s", cfg.Type)
	}
}

// Do 执行 fn 直到成功或者策略不再允许重试，返回最后一次的错误
func Do(ctx context.Context, s strategy.Strategy, fn func() error) error {
	for {
		err := fn()
		if err == nil {
			return nil
		}
		interval, ok := s.Next()
		if !ok {
			return err
		}
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: 最后一次错误 %w", ctx.Err(), err)
		case <-timer.C:
		}
	}
}
