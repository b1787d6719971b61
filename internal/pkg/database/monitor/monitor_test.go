package monitor

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-snowflake/internal/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSQLDB(t *testing.T) *sql.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	return sqlDB
}

func TestHeartbeat_healthOneLoop(t *testing.T) {
	t.Parallel()

	sqlDB := newSQLDB(t)
	h := NewHeartbeatDBMonitor(sqlDB, logger.NewNopLogger())
	ctx := context.Background()

	// 初始状态是健康的
	assert.True(t, h.Health())
	require.NoError(t, h.healthOneLoop(ctx))
	assert.True(t, h.Health())

	require.NoError(t, sqlDB.Close())
	// 连续失败两次还是健康的，第三次变为不健康
	assert.Error(t, h.healthOneLoop(ctx))
	assert.Error(t, h.healthOneLoop(ctx))
	assert.True(t, h.Health())
	assert.Error(t, h.healthOneLoop(ctx))
	assert.False(t, h.Health())
}

func TestHeartbeat_Report(t *testing.T) {
	t.Parallel()

	h := NewHeartbeatDBMonitor(nil, logger.NewNopLogger())
	mockErr := errors.New("mock db error")

	for i := 0; i < defaultFailCount; i++ {
		h.Report(mockErr)
	}
	assert.False(t, h.Health())

	// 中间夹杂一次失败，成功计数重新开始
	h.Report(nil)
	h.Report(nil)
	h.Report(mockErr)
	h.Report(nil)
	h.Report(nil)
	assert.False(t, h.Health())
	h.Report(nil)
	assert.True(t, h.Health())
}

func TestHeartbeat_Start(t *testing.T) {
	t.Parallel()

	h := NewHeartbeatDBMonitor(newSQLDB(t), logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// ctx 已经取消，应当立刻返回
	h.Start(ctx)
	assert.True(t, h.Health())
}
