package event

import (
	"context"
	"fmt"

	"go-snowflake/internal/domain"
	"go-snowflake/internal/errs"
	"go-snowflake/internal/repository"
)

const (
	DefaultListLimit = 1000
	MaxListLimit     = 1000
)

// Recorder 审计事件的写入方，尽力而为，调用方不能因为它失败而中断 ID 生成
//
//go:generate mockgen -source=./event.go -destination=./mocks/event.mock.go -package=eventmocks Recorder
type Recorder interface {
	Record(ctx context.Context, evt domain.Event) error
}

type Service interface {
	Recorder
	// List 查询某台机器最近的事件，按时间倒序
	List(ctx context.Context, datacenterID, machineID int64, limit int) ([]domain.Event, error)
	// PurgeBefore 删除 ctime 之前的事件，返回删除条数
	PurgeBefore(ctx context.Context, ctime int64) (int64, error)
}

type service struct {
	repo      repository.EventRepository
	batchSize int
}

func NewService(repo repository.EventRepository) Service {
	const batchSize = 500
	return &service{repo: repo, batchSize: batchSize}
}

func (s *service) Record(ctx context.Context, evt domain.Event) error {
	_, err := s.repo.Create(ctx, evt)
	if err != nil {
		return fmt.Errorf("保存事件 %s 失败: %w", evt.Type, err)
	}
	return nil
}

func (s *service) List(ctx context.Context, datacenterID, machineID int64, limit int) ([]domain.Event, error) {
	if limit < 0 || limit > MaxListLimit {
		return nil, fmt.Errorf("%w: limit 取值范围 [0, %d]", errs.ErrInvalidParameter, MaxListLimit)
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, datacenterID, machineID, limit)
}

func (s *service) PurgeBefore(ctx context.Context, ctime int64) (int64, error) {
	var total int64
	for {
		n, err := s.repo.DeleteBefore(ctx, ctime, s.batchSize)
		total += n
		if err != nil {
			return total, err
		}
		if n < int64(s.batchSize) {
			return total, nil
		}
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
	}
}
