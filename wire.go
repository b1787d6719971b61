//go:build wireinject

package main

import (
	"github.com/google/wire"
	"go-snowflake/internal/ioc"
	"go-snowflake/internal/pkg/database/monitor"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/web/snowflake"
	"go-snowflake/internal/web/system"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var thirdPartySet = wire.NewSet(
	ioc.InitLogger,
	wire.Bind(new(logger.Logger), new(*logger.ZapLogger)),
	ioc.InitPrometheusRegisterer,
	ioc.InitPrometheusGatherer,
	ioc.InitDB,
	ioc.InitDBMonitor,
	wire.Bind(new(monitor.DBMonitor), new(*monitor.Heartbeat)),
	ioc.InitRedisClient,
	ioc.InitDistributedLock,
	ioc.InitZipkinTracer,
	wire.Bind(new(trace.TracerProvider), new(*sdktrace.TracerProvider)),
	ioc.InitAuditKafka,
)

var eventSet = wire.NewSet(
	ioc.InitEventService,
	ioc.InitEventRecorder,
	ioc.InitAuditConsumer,
	ioc.InitRetentionJob,
	ioc.InitCron,
)

var snowflakeSet = wire.NewSet(
	ioc.InitRecounterService,
	ioc.InitGenerator,
	ioc.InitSnowflakeService,
	snowflake.NewHandler,
	system.NewHandler,
	ioc.InitWebServer,
)

func InitApp() *ioc.App {
	wire.Build(
		thirdPartySet,
		eventSet,
		snowflakeSet,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
