package recounter

import (
	"context"
	"errors"
	"fmt"

	"go-snowflake/internal/domain"
	"go-snowflake/internal/errs"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/repository"
)

//go:generate mockgen -source=./recounter.go -destination=./mocks/recounter.mock.go -package=recountermocks Service
type Service interface {
	// Get 查询当前持久化的计数，不存在时返回 errs.ErrRecounterNotFound
	Get(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error)
	// Bump 不存在则创建并返回 0，存在则原子地 +1 取模 4 并返回新值
	// 同一进程内对同一个 key 的并发调用需要调用方自己串行化
	Bump(ctx context.Context, datacenterID, machineID int64) (int64, error)
}

type service struct {
	repo repository.RecounterRepository
	l    logger.Logger
}

func NewService(repo repository.RecounterRepository, l logger.Logger) Service {
	return &service{repo: repo, l: l}
}

func (s *service) Get(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error) {
	res, err := s.repo.Get(ctx, datacenterID, machineID)
	if err != nil {
		if errors.Is(err, errs.ErrRecounterNotFound) {
			return domain.Recounter{}, err
		}
		return domain.Recounter{}, fmt.Errorf("%w: 查询失败 dcid=%d mid=%d: %w", errs.ErrRecounterStore, datacenterID, machineID, err)
	}
	return res, nil
}

func (s *service) Bump(ctx context.Context, datacenterID, machineID int64) (int64, error) {
	res, err := s.repo.Bump(ctx, datacenterID, machineID)
	if err != nil {
		s.l.Error("更新重启计数失败",
			logger.Int64("datacenter_id", datacenterID),
			logger.Int64("machine_id", machineID),
			logger.Error(err))
		return 0, fmt.Errorf("%w: 更新失败 dcid=%d mid=%d: %w", errs.ErrRecounterStore, datacenterID, machineID, err)
	}
	s.l.Info("重启计数已更新",
		logger.Int64("datacenter_id", datacenterID),
		logger.Int64("machine_id", machineID),
		logger.Int64("recount", res.Recount))
	return res.Recount, nil
}
