package snowflake

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go-snowflake/internal/domain"
)

const (
	metricsMaxAge = 5 * time.Minute

	statusSuccess = "success"
	statusFailed  = "failed"
)

var _ Service = (*MetricsService)(nil)

// MetricsService 统计生成数量和耗时
type MetricsService struct {
	Service
	durationSummary *prometheus.SummaryVec
	idCounter       *prometheus.CounterVec
}

func NewMetricsService(svc Service, registry prometheus.Registerer) *MetricsService {
	durationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "snowflake_generate_duration_seconds",
			Help: "ID生成耗时统计（秒）",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
			MaxAge: metricsMaxAge,
		}, []string{"method", "status"},
	)
	idCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snowflake_generated_ids_total",
			Help: "生成的ID总数",
		}, []string{"method", "status"},
	)
	registry.MustRegister(durationSummary, idCounter)
	return &MetricsService{
		Service:         svc,
		durationSummary: durationSummary,
		idCounter:       idCounter,
	}
}

func (m *MetricsService) GenerateID(ctx context.Context, businessID int64) (domain.SnowflakeID, error) {
	start := time.Now()
	res, err := m.Service.GenerateID(ctx, businessID)
	m.observe("GenerateID", start, 1, err)
	return res, err
}

func (m *MetricsService) GenerateIDs(ctx context.Context, businessID int64, count int) ([]domain.SnowflakeID, error) {
	start := time.Now()
	res, err := m.Service.GenerateIDs(ctx, businessID, count)
	m.observe("GenerateIDs", start, len(res), err)
	return res, err
}

func (m *MetricsService) observe(method string, start time.Time, n int, err error) {
	status := statusSuccess
	if err != nil {
		status = statusFailed
		n = 1
	}
	m.durationSummary.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
	m.idCounter.WithLabelValues(method, status).Add(float64(n))
}
