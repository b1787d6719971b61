package dao

import (
	"context"
	"time"

	"go-snowflake/internal/pkg/sqlx"
	"gorm.io/gorm"
)

// Event 生成器审计事件表
type Event struct {
	ID           int64                        `gorm:"primaryKey;autoIncrement;comment:事件ID"`
	DatacenterID int64                        `gorm:"column:dcid;type:BIGINT;NOT NULL;DEFAULT:0;index:idx_dcid_mid_ct,priority:1;comment:数据中心ID"`
	MachineID    int64                        `gorm:"column:mid;type:BIGINT;NOT NULL;DEFAULT:0;index:idx_dcid_mid_ct,priority:2;comment:机器ID"`
	EventType    int                          `gorm:"column:event_type;type:INT;NOT NULL;DEFAULT:0;comment:事件类型"`
	Brief        string                       `gorm:"column:brief;type:TEXT;comment:事件简述"`
	Detail       sqlx.JsonColumn[EventDetail] `gorm:"column:detail;type:TEXT;comment:事件详情JSON"`
	Ctime        int64                        `gorm:"column:ct;index:idx_dcid_mid_ct,priority:3;index:idx_ct;comment:创建时间"`
}

func (Event) TableName() string {
	return "event"
}

type EventDetail struct {
	Recount          int64  `json:"recount"`
	LastTimestamp    int64  `json:"lastTimestamp,omitempty"`
	CurrentTimestamp int64  `json:"currentTimestamp,omitempty"`
	Error            string `json:"error,omitempty"`
}

type EventDAO interface {
	Create(ctx context.Context, evt Event) (Event, error)
	// List 按创建时间倒序返回最近的事件
	List(ctx context.Context, datacenterID, machineID int64, limit int) ([]Event, error)
	// DeleteBefore 删除 ct 早于 ctime 的事件，单次最多删除 batchSize 条
	DeleteBefore(ctx context.Context, ctime int64, batchSize int) (int64, error)
}

type eventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) EventDAO {
	return &eventDAO{db: db}
}

func (e *eventDAO) Create(ctx context.Context, evt Event) (Event, error) {
	if evt.Ctime == 0 {
		evt.Ctime = time.Now().UnixMilli()
	}
	err := e.db.WithContext(ctx).Create(&evt).Error
	return evt, err
}

func (e *eventDAO) List(ctx context.Context, datacenterID, machineID int64, limit int) ([]Event, error) {
	var res []Event
	err := e.db.WithContext(ctx).
		Where("dcid = ? AND mid = ?", datacenterID, machineID).
		Order("ct DESC").Order("id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (e *eventDAO) DeleteBefore(ctx context.Context, ctime int64, batchSize int) (int64, error) {
	var rowsAffected int64
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []int64
		err := tx.Model(&Event{}).
			Where("ct < ?", ctime).
			Order("id ASC").
			Limit(batchSize).
			Pluck("id", &ids).Error
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		res := tx.Where("id IN ?", ids).Delete(&Event{})
		rowsAffected = res.RowsAffected
		return res.Error
	})
	return rowsAffected, err
}
