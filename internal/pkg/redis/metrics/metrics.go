package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

var _ redis.Hook = (*Hook)(nil)

// Hook 统计每个命令的耗时和错误数
type Hook struct {
	duration *prometheus.SummaryVec
}

func NewHook(registry prometheus.Registerer) *Hook {
	duration := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "redis",
		Name:      "command_duration_seconds",
		Help:      "redis 命令耗时（秒）",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
		MaxAge: 5 * time.Minute,
	}, []string{"cmd", "status"})
	registry.MustRegister(duration)
	return &Hook{duration: duration}
}

// WithMetrics 给客户端装上指标 hook
func WithMetrics(client *redis.Client, registry prometheus.Registerer) *redis.Client {
	client.AddHook(NewHook(registry))
	return client
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.duration.WithLabelValues(cmd.Name(), status(err)).Observe(time.Since(start).Seconds())
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		h.duration.WithLabelValues("pipeline", status(err)).Observe(time.Since(start).Seconds())
		return err
	}
}

func status(err error) string {
	switch {
	case err == nil, errors.Is(err, redis.Nil):
		return "success"
	default:
		return "error"
	}
}
