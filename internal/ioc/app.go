package ioc

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go-snowflake/internal/event/audit"
	"go-snowflake/internal/pkg/database/monitor"
	"go-snowflake/internal/pkg/logger"
	snowflakesvc "go-snowflake/internal/service/snowflake"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Web            *gin.Engine
	Cron           *cron.Cron
	DBMonitor      *monitor.Heartbeat
	AuditConsumer  *audit.Consumer
	AuditKafka     *AuditKafka
	Generator      *snowflakesvc.Generator
	TracerProvider *sdktrace.TracerProvider
	Logger         logger.Logger
}

// Run 阻塞运行，ctx 取消后优雅退出
func (a *App) Run(ctx context.Context) error {
	type Config struct {
		Addr string `yaml:"addr"`
	}
	cfg := Config{Addr: ":8080"}
	if err := viper.UnmarshalKey("server", &cfg); err != nil {
		return err
	}
	server := &http.Server{Addr: cfg.Addr, Handler: a.Web}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		a.Logger.Info("HTTP 服务启动", logger.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		a.DBMonitor.Start(ctx)
		return nil
	})
	if a.AuditConsumer != nil {
		if err := a.AuditConsumer.Start(ctx); err != nil {
			return err
		}
	}
	a.Cron.Start()

	eg.Go(func() error {
		<-ctx.Done()
		return a.shutdown(server)
	})
	return eg.Wait()
}

func (a *App) shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := server.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	<-a.Cron.Stop().Done()
	a.Generator.Close(ctx)
	if a.AuditConsumer != nil {
		if err := a.AuditConsumer.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.AuditKafka.Producer != nil {
		const flushTimeoutMs = 5000
		a.AuditKafka.Producer.Flush(flushTimeoutMs)
		a.AuditKafka.Producer.Close()
	}
	if err := a.TracerProvider.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	a.Logger.Info("服务已退出")
	return errors.Join(errs...)
}
