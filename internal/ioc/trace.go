package ioc

import (
	"time"

	"github.com/spf13/viper"
	"go-snowflake/internal/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// InitZipkinTracer 初始化 zipkin tracer，没有配置 endpoint 时只在本地生成 span
func InitZipkinTracer(l logger.Logger) *trace.TracerProvider {
	type Config struct {
		Endpoint    string `yaml:"endpoint"`
		ServiceName string `yaml:"serviceName"`
	}
	cfg := Config{ServiceName: "go-snowflake"}
	if err := viper.UnmarshalKey("trace.zipkin", &cfg); err != nil {
		panic(err)
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		panic(err)
	}
	otel.SetTextMapPropagator(newPropagator())

	opts := []trace.TracerProviderOption{trace.WithResource(res)}
	if cfg.Endpoint != "" {
		exporter, er := zipkin.New(cfg.Endpoint)
		if er != nil {
			panic(er)
		}
		opts = append(opts, trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)))
	} else {
		l.Warn("没有配置 zipkin endpoint，链路数据不会上报")
	}
	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}

// newPropagator 创建上下文传播器
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newResource(serviceName string) (*resource.Resource, error) {
	const serviceVersion = "v0.0.1"
	return resource.Merge(
		resource.Default(),
		// 不带 schema，和 resource.Default 的 schema 版本不冲突
		resource.NewSchemaless(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
}
