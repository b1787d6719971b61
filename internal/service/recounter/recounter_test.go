package recounter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-snowflake/internal/domain"
	"go-snowflake/internal/errs"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/repository"
	"go-snowflake/internal/repository/dao"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newService(t *testing.T) (Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, dao.InitTables(db))
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	repo := repository.NewRecounterRepository(dao.NewRecounterDAO(db))
	return NewService(repo, logger.NewNopLogger()), db
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	svc, db := newService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 1, 2)
	assert.ErrorIs(t, err, errs.ErrRecounterNotFound)
	assert.NotErrorIs(t, err, errs.ErrRecounterStore)

	require.NoError(t, db.Create(&dao.Recounter{DatacenterID: 1, MachineID: 2, Recount: 2}).Error)
	found, err := svc.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Recounter{DatacenterID: 1, MachineID: 2, Recount: 2}, found)
}

func TestService_Bump(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	ctx := context.Background()

	results := make([]int64, 0, 6)
	for i := 0; i < 6; i++ {
		rc, err := svc.Bump(ctx, 1, 2)
		require.NoError(t, err)
		results = append(results, rc)
	}
	// 第一次为创建
	assert.Equal(t, []int64{0, 1, 2, 3, 0, 1}, results)

	found, err := svc.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.Recount)
}

func TestService_StoreError(t *testing.T) {
	t.Parallel()

	svc, db := newService(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.Bump(context.Background(), 1, 2)
	assert.ErrorIs(t, err, errs.ErrRecounterStore)

	_, err = svc.Get(context.Background(), 1, 2)
	assert.ErrorIs(t, err, errs.ErrRecounterStore)
}

type errRepo struct {
	err error
}

func (e errRepo) Get(context.Context, int64, int64) (domain.Recounter, error) {
	return domain.Recounter{}, e.err
}

func (e errRepo) Bump(context.Context, int64, int64) (domain.Recounter, error) {
	return domain.Recounter{}, e.err
}

func TestService_WrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	svc := NewService(errRepo{err: cause}, logger.NewNopLogger())
	_, err := svc.Bump(context.Background(), 0, 0)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errs.ErrRecounterStore)
}

var _ repository.RecounterRepository = errRepo{}
