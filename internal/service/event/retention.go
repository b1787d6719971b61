package event

import (
	"context"
	"time"

	"github.com/meoying/dlock-go"
	"go-snowflake/internal/pkg/logger"
)

const retentionLockKey = "snowflake:event:retention"

// RetentionJob 定时清理过期的审计事件，多实例部署时靠分布式锁保证只有一个实例在删
type RetentionJob struct {
	svc       Service
	dclient   dlock.Client
	retention time.Duration
	timeout   time.Duration
	l         logger.Logger
	now       func() time.Time
}

func NewRetentionJob(svc Service, dclient dlock.Client, retention time.Duration, l logger.Logger) *RetentionJob {
	const defaultTimeout = time.Minute
	return &RetentionJob{
		svc:       svc,
		dclient:   dclient,
		retention: retention,
		timeout:   defaultTimeout,
		l:         l,
		now:       time.Now,
	}
}

// Run 实现 cron.Job
func (r *RetentionJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	lock, err := r.dclient.NewLock(ctx, retentionLockKey, r.timeout)
	if err != nil {
		r.l.Error("初始化分布式锁失败", logger.Error(err))
		return
	}
	// 没拿到锁说明别的实例在执行，直接跳过这一轮
	if err = lock.Lock(ctx); err != nil {
		r.l.Info("没有抢到分布式锁，跳过本次清理", logger.Error(err))
		return
	}
	defer func() {
		unCtx, unCancel := context.WithTimeout(context.Background(), time.Second*3)
		defer unCancel()
		if unErr := lock.Unlock(unCtx); unErr != nil {
			r.l.Error("释放分布式锁失败", logger.Error(unErr))
		}
	}()

	r.purge(ctx)
}

func (r *RetentionJob) purge(ctx context.Context) int64 {
	before := r.now().Add(-r.retention).UnixMilli()
	n, err := r.svc.PurgeBefore(ctx, before)
	if err != nil {
		r.l.Error("清理过期事件失败", logger.Int64("before", before), logger.Int64("deleted", n), logger.Error(err))
		return n
	}
	r.l.Info("清理过期事件", logger.Int64("before", before), logger.Int64("deleted", n))
	return n
}
