package ioc

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go-snowflake/internal/pkg/logger"
	"go-snowflake/internal/service/event"
	"go-snowflake/internal/service/recounter"
	snowflakesvc "go-snowflake/internal/service/snowflake"
	"go.opentelemetry.io/otel/trace"
)

// 环境变量优先于配置文件
var snowflakeEnvBindings = map[string]string{
	"snowflake.datacenterId":   "SNOWFLAKE_DATACENTER_ID",
	"snowflake.machineId":      "SNOWFLAKE_MACHINE_ID",
	"snowflake.startTimestamp": "SNOWFLAKE_START_TIMESTAMP",
}

func loadSnowflakeConfig(v *viper.Viper) (snowflakesvc.Config, error) {
	cfg := snowflakesvc.Config{
		StartTimestamp:         snowflakesvc.DefaultStartTimestamp,
		ClockBackwardThreshold: snowflakesvc.DefaultClockBackwardThreshold,
	}
	if err := v.UnmarshalKey("snowflake", &cfg); err != nil {
		return snowflakesvc.Config{}, err
	}
	for key, env := range snowflakeEnvBindings {
		if err := v.BindEnv(key, env); err != nil {
			return snowflakesvc.Config{}, err
		}
	}
	// UnmarshalKey 不会合并子 key 上绑定的环境变量，这里逐个覆盖
	if v.IsSet("snowflake.datacenterId") {
		cfg.DatacenterID = v.GetInt64("snowflake.datacenterId")
	}
	if v.IsSet("snowflake.machineId") {
		cfg.MachineID = v.GetInt64("snowflake.machineId")
	}
	if v.IsSet("snowflake.startTimestamp") {
		cfg.StartTimestamp = v.GetInt64("snowflake.startTimestamp")
	}
	return cfg, nil
}

func InitGenerator(store recounter.Service, recorder event.Recorder, l logger.Logger) *snowflakesvc.Generator {
	cfg, err := loadSnowflakeConfig(viper.GetViper())
	if err != nil {
		panic(err)
	}
	gen, err := snowflakesvc.NewGenerator(context.Background(), cfg, store, recorder, l)
	if err != nil {
		panic(err)
	}
	return gen
}

func InitSnowflakeService(gen *snowflakesvc.Generator, store recounter.Service, events event.Service,
	registry prometheus.Registerer, provider trace.TracerProvider) snowflakesvc.Service {
	svc := snowflakesvc.NewService(gen, store, events)
	return snowflakesvc.NewTracingService(snowflakesvc.NewMetricsService(svc, registry), provider)
}
