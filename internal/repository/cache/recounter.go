package cache

import (
	"context"
	"errors"
	"fmt"

	"go-snowflake/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

const RecounterPrefix = "snowflake:recounter"

// RecounterCache 以 redis 作为重启计数的存储，Bump 必须是原子的
type RecounterCache interface {
	Get(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error)
	Bump(ctx context.Context, datacenterID, machineID int64) (domain.Recounter, error)
}

func RecounterKey(datacenterID, machineID int64) string {
	return fmt.Sprintf("%s:%d:%d", RecounterPrefix, datacenterID, machineID)
}
