package monitor

import (
	"context"
	"database/sql"
	"sync/atomic"
	"time"

	"go-snowflake/internal/pkg/logger"
)

const (
	timeout             = 5 * time.Second
	defaultFailCount    = 3
	defaultSuccessCount = 3
)

//go:generate mockgen -source=./monitor.go -package=monitormocks -destination=./mocks/monitor.mock.go DBMonitor
type DBMonitor interface {
	Health() bool
	// Report 上报数据库调用时的 error，连续失败达到阈值时标记为不健康
	Report(err error)
}

type Heartbeat struct {
	db             *sql.DB
	log            logger.Logger
	interval       time.Duration
	health         *atomic.Bool
	failCounter    *atomic.Int32 // 连续失败计数器
	successCounter *atomic.Int32 // 连续成功计数器（用于恢复）
}

func NewHeartbeatDBMonitor(db *sql.DB, log logger.Logger) *Heartbeat {
	he := &atomic.Bool{}
	he.Store(true)

	return &Heartbeat{
		db:             db,
		log:            log,
		interval:       time.Second,
		health:         he,
		failCounter:    &atomic.Int32{},
		successCounter: &atomic.Int32{},
	}
}

func (h *Heartbeat) Health() bool {
	return h.health.Load()
}

func (h *Heartbeat) Report(err error) {
	if err == nil {
		h.onSuccess()
		return
	}
	h.onFailure()
}

// Start 阻塞执行心跳检查，直到 ctx 被取消
func (h *Heartbeat) Start(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.log.Info("数据库心跳检查退出", logger.Error(ctx.Err()))
			return
		case <-ticker.C:
			timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
			err := h.healthOneLoop(timeoutCtx)
			cancel()
			if err != nil {
				h.log.Error("数据库健康检查失败", logger.Error(err))
			}
		}
	}
}

func (h *Heartbeat) healthOneLoop(ctx context.Context) error {
	err := h.db.PingContext(ctx)
	h.Report(err)
	return err
}

func (h *Heartbeat) onFailure() {
	h.successCounter.Store(0)
	if h.failCounter.Add(1) >= defaultFailCount {
		h.health.Store(false)
		h.failCounter.Store(0)
	}
}

func (h *Heartbeat) onSuccess() {
	h.failCounter.Store(0)
	if h.successCounter.Add(1) >= defaultSuccessCount {
		h.health.Store(true)
		h.successCounter.Store(0)
	}
}
