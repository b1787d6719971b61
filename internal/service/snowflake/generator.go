package snowflake

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-snowflake/internal/domain"
	"go-snowflake/internal/errs"
	"go-snowflake/internal/pkg/id_generator"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/service/event"
	"go-snowflake/internal/service/recounter"
)

const (
	// DefaultStartTimestamp 2021-01-01 00:00:00 UTC
	DefaultStartTimestamp         = int64(1609459200000)
	DefaultClockBackwardThreshold = 5 * time.Millisecond

	// 还没有生成过 ID，第一次调用一定走新毫秒的分支
	unsetTimestamp = int64(-1)
)

type Config struct {
	DatacenterID   int64 `yaml:"datacenterId"`
	MachineID      int64 `yaml:"machineId"`
	StartTimestamp int64 `yaml:"startTimestamp"`
	// 回拨不超过这个值就原地等待，超过了就更新重启计数，最小 1ms，按毫秒截断
	ClockBackwardThreshold time.Duration `yaml:"clockBackwardThreshold"`
}

func (c Config) Validate() error {
	if c.DatacenterID < 0 || c.DatacenterID > id_generator.MaxDatacenterID {
		return fmt.Errorf("%w: %w: %d 不在 [0, %d]", errs.ErrConfiguration, errs.ErrInvalidDatacenterID,
			c.DatacenterID, id_generator.MaxDatacenterID)
	}
	if c.MachineID < 0 || c.MachineID > id_generator.MaxMachineID {
		return fmt.Errorf("%w: %w: %d 不在 [0, %d]", errs.ErrConfiguration, errs.ErrInvalidMachineID,
			c.MachineID, id_generator.MaxMachineID)
	}
	if c.StartTimestamp < 0 {
		return fmt.Errorf("%w: start_timestamp 不能为负数 %d", errs.ErrConfiguration, c.StartTimestamp)
	}
	if c.ClockBackwardThreshold < time.Millisecond {
		return fmt.Errorf("%w: clock_backward_threshold 不能小于 1ms %s", errs.ErrConfiguration, c.ClockBackwardThreshold)
	}
	return nil
}

type Option func(g *Generator)

// WithClock 替换毫秒时钟
func WithClock(now func() int64) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func WithSleep(sleep func(d time.Duration)) Option {
	return func(g *Generator) {
		g.sleep = sleep
	}
}

// Generator 单个 (datacenter, machine) 的 ID 生成器，并发安全
type Generator struct {
	cfg         Config
	thresholdMs int64
	store       recounter.Service
	recorder    event.Recorder
	l           logger.Logger

	now   func() int64
	sleep func(d time.Duration)

	// mu 保护下面所有字段，整个状态迁移和组装都在锁内
	mu            sync.Mutex
	lastTimestamp int64
	sequence      int64
	recount       int64

	closeOnce sync.Once
}

// NewGenerator 校验配置，更新一次重启计数，然后记录启动事件
// 配置错误和存储错误都是致命的
func NewGenerator(ctx context.Context, cfg Config, store recounter.Service,
	recorder event.Recorder, l logger.Logger, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:           cfg,
		thresholdMs:   cfg.ClockBackwardThreshold.Milliseconds(),
		store:         store,
		recorder:      recorder,
		l:             l.With(logger.Int64("datacenter_id", cfg.DatacenterID), logger.Int64("machine_id", cfg.MachineID)),
		now:           func() int64 { return time.Now().UnixMilli() },
		sleep:         time.Sleep,
		lastTimestamp: unsetTimestamp,
	}
	for _, opt := range opts {
		opt(g)
	}

	if now := g.now(); now < cfg.StartTimestamp {
		return nil, fmt.Errorf("%w: start_timestamp %d 晚于当前时间 %d", errs.ErrConfiguration, cfg.StartTimestamp, now)
	}

	rc, err := g.store.Bump(ctx, cfg.DatacenterID, cfg.MachineID)
	if err != nil {
		return nil, fmt.Errorf("初始化重启计数失败: %w", err)
	}
	g.recount = rc

	g.l.Info("ID生成器启动", logger.Int64("recount", rc), logger.Int64("start_timestamp", cfg.StartTimestamp))
	g.record(ctx, domain.EventTypeServiceStart, "服务启动", domain.EventDetail{Recount: rc})
	return g, nil
}

// Generate 生成一个 ID，businessID 只保留低 3 位
func (g *Generator) Generate(ctx context.Context, businessID int64) (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generate(ctx, businessID)
}

func (g *Generator) generate(ctx context.Context, businessID int64) (uint64, error) {
	now := g.now()
	var sequence int64

	switch {
	case now < g.lastTimestamp:
		offset := g.lastTimestamp - now
		if offset <= g.thresholdMs {
			g.l.Warn("时钟回拨，等待追上", logger.Int64("offset_ms", offset))
			now = g.waitUntil(g.lastTimestamp + 1)
			break
		}
		rc, err := g.store.Bump(ctx, g.cfg.DatacenterID, g.cfg.MachineID)
		if err != nil {
			g.l.Error("时钟回拨后更新重启计数失败", logger.Int64("offset_ms", offset), logger.Error(err))
			g.record(ctx, domain.EventTypeError, "时钟回拨后更新重启计数失败", domain.EventDetail{
				Recount:          g.recount,
				LastTimestamp:    g.lastTimestamp,
				CurrentTimestamp: now,
				Error:            err.Error(),
			})
			return 0, err
		}
		g.l.Warn("时钟回拨超过阈值，更新重启计数",
			logger.Int64("offset_ms", offset),
			logger.Int64("old_recount", g.recount),
			logger.Int64("recount", rc))
		g.recount = rc
		g.record(ctx, domain.EventTypeClockBackward, "时钟回拨", domain.EventDetail{
			Recount:          rc,
			LastTimestamp:    g.lastTimestamp,
			CurrentTimestamp: now,
		})
	case now == g.lastTimestamp:
		sequence = (g.sequence + 1) & id_generator.MaxSequence
		if sequence == 0 {
			g.record(ctx, domain.EventTypeSequenceOverflow, "序列号溢出", domain.EventDetail{
				Recount:          g.recount,
				LastTimestamp:    g.lastTimestamp,
				CurrentTimestamp: now,
			})
			now = g.waitUntil(g.lastTimestamp + 1)
		}
	}

	g.sequence = sequence
	g.lastTimestamp = now
	return id_generator.Assemble(id_generator.Fields{
		Timestamp:    now - g.cfg.StartTimestamp,
		DatacenterID: g.cfg.DatacenterID,
		MachineID:    g.cfg.MachineID,
		Recount:      g.recount,
		BusinessID:   id_generator.MaskBusinessID(businessID),
		Sequence:     sequence,
	}), nil
}

// GenerateBatch 依次生成 count 个 ID，有一个失败整批失败
func (g *Generator) GenerateBatch(ctx context.Context, businessID int64, count int) ([]uint64, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count 必须大于 0", errs.ErrInvalidParameter)
	}
	ids := make([]uint64, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate(ctx, businessID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Parse 解析 ID，Timestamp 为绝对毫秒时间戳
func (g *Generator) Parse(id uint64) domain.SnowflakeID {
	f := id_generator.Disassemble(id)
	return domain.SnowflakeID{
		ID:           id,
		Timestamp:    f.Timestamp + g.cfg.StartTimestamp,
		DatacenterID: f.DatacenterID,
		MachineID:    f.MachineID,
		Recount:      f.Recount,
		BusinessID:   f.BusinessID,
		Sequence:     f.Sequence,
	}
}

// Recount 当前内存中的重启计数
func (g *Generator) Recount() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.recount
}

func (g *Generator) DatacenterID() int64 {
	return g.cfg.DatacenterID
}

func (g *Generator) MachineID() int64 {
	return g.cfg.MachineID
}

// Close 记录停止事件，重复调用只记录一次
func (g *Generator) Close(ctx context.Context) {
	g.closeOnce.Do(func() {
		g.l.Info("ID生成器停止")
		g.record(ctx, domain.EventTypeServiceStop, "服务停止", domain.EventDetail{Recount: g.Recount()})
	})
}

// waitUntil 阻塞到时钟不小于 target，返回此时的时间
func (g *Generator) waitUntil(target int64) int64 {
	now := g.now()
	for now < target {
		g.sleep(time.Duration(target-now+1) * time.Millisecond)
		now = g.now()
	}
	return now
}

func (g *Generator) record(ctx context.Context, typ domain.EventType, brief string, detail domain.EventDetail) {
	err := g.recorder.Record(ctx, domain.Event{
		DatacenterID: g.cfg.DatacenterID,
		MachineID:    g.cfg.MachineID,
		Type:         typ,
		Brief:        brief,
		Detail:       detail,
		Ctime:        time.Now().UnixMilli(),
	})
	if err != nil {
		g.l.Warn("记录审计事件失败", logger.String("event_type", typ.String()), logger.Error(err))
	}
}
