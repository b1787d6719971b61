package snowflake

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"go-snowflake/internal/domain"
	"go-snowflake/internal/errs"
	"go-snowflake/internal/service/event"
	"go-snowflake/internal/service/recounter"
)

// MaxBatchCount 单次批量生成的上限
const MaxBatchCount = 1000

//go:generate mockgen -source=./service.go -destination=./mocks/snowflake.mock.go -package=snowflakemocks Service
type Service interface {
	GenerateID(ctx context.Context, businessID int64) (domain.SnowflakeID, error)
	GenerateIDs(ctx context.Context, businessID int64, count int) ([]domain.SnowflakeID, error)
	ParseID(ctx context.Context, id uint64) (domain.SnowflakeID, error)
	// Recounter 查询本机持久化的重启计数
	Recounter(ctx context.Context) (domain.Recounter, error)
	// Events 查询本机最近的审计事件
	Events(ctx context.Context, limit int) ([]domain.Event, error)
}

type service struct {
	gen       *Generator
	recounter recounter.Service
	events    event.Service
}

func NewService(gen *Generator, recounterSvc recounter.Service, eventSvc event.Service) Service {
	return &service{gen: gen, recounter: recounterSvc, events: eventSvc}
}

func (s *service) GenerateID(ctx context.Context, businessID int64) (domain.SnowflakeID, error) {
	id, err := s.gen.Generate(ctx, businessID)
	if err != nil {
		return domain.SnowflakeID{}, err
	}
	return s.gen.Parse(id), nil
}

func (s *service) GenerateIDs(ctx context.Context, businessID int64, count int) ([]domain.SnowflakeID, error) {
	if count > MaxBatchCount {
		return nil, fmt.Errorf("%w: count 不能超过 %d", errs.ErrInvalidParameter, MaxBatchCount)
	}
	ids, err := s.gen.GenerateBatch(ctx, businessID, count)
	if err != nil {
		return nil, err
	}
	return slice.Map(ids, func(_ int, id uint64) domain.SnowflakeID {
		return s.gen.Parse(id)
	}), nil
}

func (s *service) ParseID(_ context.Context, id uint64) (domain.SnowflakeID, error) {
	if id>>63 != 0 {
		return domain.SnowflakeID{}, fmt.Errorf("%w: 符号位必须为 0", errs.ErrInvalidParameter)
	}
	return s.gen.Parse(id), nil
}

func (s *service) Recounter(ctx context.Context) (domain.Recounter, error) {
	return s.recounter.Get(ctx, s.gen.DatacenterID(), s.gen.MachineID())
}

func (s *service) Events(ctx context.Context, limit int) ([]domain.Event, error) {
	return s.events.List(ctx, s.gen.DatacenterID(), s.gen.MachineID(), limit)
}
