package repository

import (
	"context"
	"errors"

	"go-snowflake/internal/domain"
	"go-snowflake/internal/errs"
	"go-snowflake/internal/repository/cache"
	"go-snowflake/internal/repository/dao"
	"gorm.io/gorm"
)

type RecounterRepository interface {
	Get(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error)
	Bump(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error)
}

type recounterRepository struct {
	dao dao.RecounterDAO
}

// NewRecounterRepository 重启计数存放在数据库
func NewRecounterRepository(dao dao.RecounterDAO) RecounterRepository {
	return &recounterRepository{dao: dao}
}

func (r *recounterRepository) Get(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error) {
	found, err := r.dao.Get(ctx, datacenterID, machineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recounter{}, errs.ErrRecounterNotFound
		}
		return domain.Recounter{}, err
	}
	return r.toDomain(found), nil
}

func (r *recounterRepository) Bump(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error) {
	res, err := r.dao.Bump(ctx, datacenterID, machineID)
	if err != nil {
		return domain.Recounter{}, err
	}
	return r.toDomain(res), nil
}

func (r *recounterRepository) toDomain(src dao.Recounter) domain.Recounter {
	return domain.Recounter{
		DatacenterID: src.DatacenterID,
		MachineID:    src.MachineID,
		Recount:      src.Recount,
		Ctime:        src.Ctime,
		Utime:        src.Utime,
	}
}

type recounterCacheRepository struct {
	cache cache.RecounterCache
}

// NewRecounterCacheRepository 重启计数存放在 redis
func NewRecounterCacheRepository(c cache.RecounterCache) RecounterRepository {
	return &recounterCacheRepository{cache: c}
}

func (r *recounterCacheRepository) Get(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error) {
	res, err := r.cache.Get(ctx, datacenterID, machineID)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return domain.Recounter{}, errs.ErrRecounterNotFound
	}
	return res, err
}

func (r *recounterCacheRepository) Bump(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error) {
	return r.cache.Bump(ctx, datacenterID, machineID)
}
