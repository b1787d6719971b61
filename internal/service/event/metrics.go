package event

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go-snowflake/internal/domain"
)

var _ Recorder = (*MetricsRecorder)(nil)

// MetricsRecorder 按事件类型计数
type MetricsRecorder struct {
	eventCounter *prometheus.CounterVec
}

func NewMetricsRecorder(registry prometheus.Registerer) *MetricsRecorder {
	eventCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snowflake",
			Name:      "events_total",
			Help:      "ID生成器审计事件总数",
		}, []string{"datacenter_id", "machine_id", "event_type"},
	)
	registry.MustRegister(eventCounter)
	return &MetricsRecorder{eventCounter: eventCounter}
}

func (m *MetricsRecorder) Record(_ context.Context, evt domain.Event) error {
	m.eventCounter.WithLabelValues(
		strconv.FormatInt(evt.DatacenterID, 10),
		strconv.FormatInt(evt.MachineID, 10),
		evt.Type.String(),
	).Inc()
	return nil
}
