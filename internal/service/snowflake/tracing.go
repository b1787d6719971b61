package snowflake

import (
	"context"
	"strconv"

	"go-snowflake/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*TracingService)(nil)

// TracingService 为 ID 生成添加链路追踪的装饰器
type TracingService struct {
	Service
	tracer trace.Tracer
}

func NewTracingService(svc Service, provider trace.TracerProvider) *TracingService {
	return &TracingService{
		Service: svc,
		tracer:  provider.Tracer("go-snowflake/internal/service/snowflake"),
	}
}

func (t *TracingService) GenerateID(ctx context.Context, businessID int64) (domain.SnowflakeID, error) {
	ctx, span := t.tracer.Start(ctx, "SnowflakeService.GenerateID",
		trace.WithAttributes(attribute.Int64("snowflake.bid", businessID)))
	defer span.End()

	res, err := t.Service.GenerateID(ctx, businessID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	span.SetAttributes(
		attribute.String("snowflake.id", strconv.FormatUint(res.ID, 10)),
		attribute.Int64("snowflake.recount", res.Recount),
	)
	return res, nil
}

func (t *TracingService) GenerateIDs(ctx context.Context, businessID int64, count int) ([]domain.SnowflakeID, error) {
	ctx, span := t.tracer.Start(ctx, "SnowflakeService.GenerateIDs",
		trace.WithAttributes(
			attribute.Int64("snowflake.bid", businessID),
			attribute.Int("snowflake.count", count),
		))
	defer span.End()

	res, err := t.Service.GenerateIDs(ctx, businessID, count)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return res, err
}
