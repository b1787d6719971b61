package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"go-snowflake/internal/domain"
	"go-snowflake/internal/pkg/sqlx"
	"go-snowflake/internal/repository/dao"
)

type EventRepository interface {
	Create(ctx context.Context, evt domain.Event) (domain.Event, error)
	List(ctx context.Context, datacenterID, machineID int64, limit int) ([]domain.Event, error)
	DeleteBefore(ctx context.Context, ctime int64, batchSize int) (int64, error)
}

type eventRepository struct {
	dao dao.EventDAO
}

func NewEventRepository(dao dao.EventDAO) EventRepository {
	return &eventRepository{dao: dao}
}

func (e *eventRepository) Create(ctx context.Context, evt domain.Event) (domain.Event, error) {
	created, err := e.dao.Create(ctx, e.toEntity(evt))
	if err != nil {
		return domain.Event{}, err
	}
	return e.toDomain(created), nil
}

func (e *eventRepository) List(ctx context.Context, datacenterID, machineID int64, limit int) ([]domain.Event, error) {
	events, err := e.dao.List(ctx, datacenterID, machineID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(events, func(_ int, src dao.Event) domain.Event {
		return e.toDomain(src)
	}), nil
}

func (e *eventRepository) DeleteBefore(ctx context.Context, ctime int64, batchSize int) (int64, error) {
	return e.dao.DeleteBefore(ctx, ctime, batchSize)
}

func (e *eventRepository) toEntity(evt domain.Event) dao.Event {
	return dao.Event{
		ID:           evt.ID,
		DatacenterID: evt.DatacenterID,
		MachineID:    evt.MachineID,
		EventType:    evt.Type.ToInt(),
		Brief:        evt.Brief,
		Detail: sqlx.NewJsonColumn(dao.EventDetail{
			Recount:          evt.Detail.Recount,
			LastTimestamp:    evt.Detail.LastTimestamp,
			CurrentTimestamp: evt.Detail.CurrentTimestamp,
			Error:            evt.Detail.Error,
		}),
		Ctime: evt.Ctime,
	}
}

func (e *eventRepository) toDomain(src dao.Event) domain.Event {
	return domain.Event{
		ID:           src.ID,
		DatacenterID: src.DatacenterID,
		MachineID:    src.MachineID,
		Type:         domain.EventType(src.EventType),
		Brief:        src.Brief,
		Detail: domain.EventDetail{
			Recount:          src.Detail.Val.Recount,
			LastTimestamp:    src.Detail.Val.LastTimestamp,
			CurrentTimestamp: src.Detail.Val.CurrentTimestamp,
			Error:            src.Detail.Val.Error,
		},
		Ctime: src.Ctime,
	}
}
