package dao

import (
	"context"
	"time"

	"go-snowflake/internal/pkg/id_generator"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Recounter 重启计数表，(dcid, mid) 唯一
type Recounter struct {
	ID           int64 `gorm:"primaryKey;autoIncrement;comment:自增ID"`
	DatacenterID int64 `gorm:"column:dcid;type:BIGINT;NOT NULL;DEFAULT:0;uniqueIndex:uk_dcid_mid,priority:1;comment:数据中心ID"`
	MachineID    int64 `gorm:"column:mid;type:BIGINT;NOT NULL;DEFAULT:0;uniqueIndex:uk_dcid_mid,priority:2;comment:机器ID"`
	Recount      int64 `gorm:"column:rc;type:INT;NOT NULL;DEFAULT:0;comment:重启/时钟回拨计数，取值0-3"`
	Ctime        int64 `gorm:"column:ct;comment:创建时间"`
	Utime        int64 `gorm:"column:ut;comment:更新时间"`
}

func (Recounter) TableName() string {
	return "recounter"
}

type RecounterDAO interface {
	Get(ctx context.Context, datacenterID, machineID int64) (Recounter, error)
	// Bump 不存在则创建(rc=0)，存在则 rc=(rc+1)%4，返回更新后的记录
	Bump(ctx context.Context, datacenterID, machineID int64) (Recounter, error)
}

type recounterDAO struct {
	db *gorm.DB
}

func NewRecounterDAO(db *gorm.DB) RecounterDAO {
	return &recounterDAO{db: db}
}

func (r *recounterDAO) Get(ctx context.Context, datacenterID, machineID int64) (Recounter, error) {
	var res Recounter
	err := r.db.WithContext(ctx).
		Where("dcid = ? AND mid = ?", datacenterID, machineID).
		First(&res).Error
	return res, err
}

func (r *recounterDAO) Bump(ctx context.Context, datacenterID, machineID int64) (Recounter, error) {
	now := time.Now().UnixMilli()
	var res Recounter
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 单条 upsert 语句完成读-改-写，多个进程共用同一个 key 也不会丢失更新
		created := Recounter{
			DatacenterID: datacenterID,
			MachineID:    machineID,
			Recount:      0,
			Ctime:        now,
			Utime:        now,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "dcid"}, {Name: "mid"}},
			DoUpdates: clause.Assignments(map[string]any{
				"rc": gorm.Expr("(rc + 1) % ?", id_generator.RecountModulo),
				"ut": now,
			}),
		}).Create(&created).Error
		if err != nil {
			return err
		}
		// upsert 已经锁住了这一行，同一个事务内读到的就是本次写入的值
		return tx.Where("dcid = ? AND mid = ?", datacenterID, machineID).First(&res).Error
	})
	return res, err
}
