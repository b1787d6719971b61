package redis

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go-snowflake/internal/domain"
	"go-snowflake/internal/pkg/id_generator"
	"go-snowflake/internal/repository/cache"
)

var (
	//go:embed lua/recounter_bump.lua
	recounterBumpLua string
	recounterBump    = redis.NewScript(recounterBumpLua)
)

var _ cache.RecounterCache = (*recounterCache)(nil)

type recounterCache struct {
	client redis.Cmdable
}

func NewRecounterCache(client redis.Cmdable) cache.RecounterCache {
	return &recounterCache{client: client}
}

func (r *recounterCache) Get(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error) {
	vals, err := r.client.HGetAll(ctx, cache.RecounterKey(datacenterID, machineID)).Result()
	if err != nil {
		return domain.Recounter{}, err
	}
	if len(vals) == 0 {
		return domain.Recounter{}, cache.ErrKeyNotFound
	}
	res := domain.Recounter{
		DatacenterID: datacenterID,
		MachineID:    machineID,
	}
	for field, dst := range map[string]*int64{"rc": &res.Recount, "ct": &res.Ctime, "ut": &res.Utime} {
		val, ok := vals[field]
		if !ok {
			continue
		}
		*dst, err = strconv.ParseInt(val, 10, 64)
		if err != nil {
			return domain.Recounter{}, fmt.Errorf("解析重启计数字段 %s 失败: %w", field, err)
		}
	}
	return res, nil
}

func (r *recounterCache) Bump(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error) {
	now := time.Now().UnixMilli()
	vals, err := recounterBump.Run(ctx, r.client,
		[]string{cache.RecounterKey(datacenterID, machineID)},
		now, id_generator.RecountModulo).Int64Slice()
	if err != nil {
		return domain.Recounter{}, err
	}
	const resultLen = 2
	if len(vals) != resultLen {
		return domain.Recounter{}, fmt.Errorf("重启计数脚本返回值非法: %v", vals)
	}
	return domain.Recounter{
		DatacenterID: datacenterID,
		MachineID:    machineID,
		Recount:      vals[0],
		Ctime:        vals[1],
		Utime:        now,
	}, nil
}
