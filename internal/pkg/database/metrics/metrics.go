package metrics

import (
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const (
	// 影响行数直方图配置
	rowAffectedBucketStart = 1
	rowAffectedBucketWidth = 10
	rowAffectedBucketCount = 10

	summaryMaxAge = 5 * time.Minute

	startTimeKey = "metrics:start_time"
	operationKey = "metrics:operation"
	tableKey     = "metrics:table"
	unknown      = "unknown"
)

// GormMetricsPlugin 统计每张表的请求数、耗时、错误数和影响行数
type GormMetricsPlugin struct {
	requestCount *prometheus.CounterVec
	responseTime *prometheus.SummaryVec
	errorCount   *prometheus.CounterVec
	rowsAffected *prometheus.HistogramVec
}

func NewGormMetricsPlugin(registry prometheus.Registerer) *GormMetricsPlugin {
	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gorm",
			Name:      "requests_total",
			Help:      "Total number of GORM database operations.",
		},
		[]string{"operation", "table"},
	)
	responseTime := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: "gorm",
			Name:      "response_time_seconds",
			Help:      "Response time of GORM database operations in seconds.",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
			MaxAge: summaryMaxAge,
		},
		[]string{"operation", "table", "status"},
	)
	errorCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gorm",
			Name:      "errors_total",
			Help:      "Total number of GORM database operation errors.",
		},
		[]string{"operation", "table", "error_type"},
	)
	rowsAffected := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gorm",
			Name:      "rows_affected",
			Help:      "Number of rows affected by GORM database operations.",
			Buckets:   prometheus.LinearBuckets(rowAffectedBucketStart, rowAffectedBucketWidth, rowAffectedBucketCount),
		},
		[]string{"operation", "table"},
	)
	registry.MustRegister(requestCount, responseTime, errorCount, rowsAffected)

	return &GormMetricsPlugin{
		requestCount: requestCount,
		responseTime: responseTime,
		errorCount:   errorCount,
		rowsAffected: rowsAffected,
	}
}

func (g *GormMetricsPlugin) Name() string {
	return "GormMetricsPlugin"
}

// Initialize 注册 GORM 回调
func (g *GormMetricsPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	if err := cb.Query().Before("gorm:query").Register("metrics:before_query", g.before("select")); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("metrics:after_query", g.after); err != nil {
		return err
	}
	if err := cb.Create().Before("gorm:create").Register("metrics:before_create", g.before("insert")); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("metrics:after_create", g.after); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("metrics:before_update", g.before("update")); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("metrics:after_update", g.after); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("metrics:before_delete", g.before("delete")); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("metrics:after_delete", g.after); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("metrics:before_raw", g.before("raw")); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("metrics:after_raw", g.after)
}

func (g *GormMetricsPlugin) before(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		table, op := tableAndOperation(db)
		if op != unknown {
			operation = op
		}
		g.requestCount.WithLabelValues(operation, table).Inc()
		db.Set(startTimeKey, time.Now())
		db.Set(operationKey, operation)
		db.Set(tableKey, table)
	}
}

func (g *GormMetricsPlugin) after(db *gorm.DB) {
	val, ok := db.Get(startTimeKey)
	if !ok {
		return
	}
	startTime, ok := val.(time.Time)
	if !ok {
		return
	}
	duration := time.Since(startTime).Seconds()

	opVal, _ := db.Get(operationKey)
	tableVal, _ := db.Get(tableKey)
	operation, _ := opVal.(string)
	table, _ := tableVal.(string)

	status := "success"
	if db.Error != nil {
		status = "error"
		errorType := "unknown_error"
		if errors.Is(db.Error, gorm.ErrRecordNotFound) {
			errorType = "record_not_found"
		}
		g.errorCount.WithLabelValues(operation, table, errorType).Inc()
	}
	g.responseTime.WithLabelValues(operation, table, status).Observe(duration)
	if db.Statement.RowsAffected > 0 {
		g.rowsAffected.WithLabelValues(operation, table).Observe(float64(db.Statement.RowsAffected))
	}
}

func tableAndOperation(db *gorm.DB) (table, operation string) {
	table, operation = unknown, unknown
	if db.Statement.Schema != nil {
		table = db.Statement.Schema.Table
	} else if db.Statement.Table != "" {
		table = db.Statement.Table
	}

	sql := strings.ToUpper(strings.TrimSpace(db.Statement.SQL.String()))
	for _, op := range []string{"SELECT", "UPDATE", "DELETE", "INSERT"} {
		if strings.HasPrefix(sql, op) {
			operation = strings.ToLower(op)
			break
		}
	}
	return table, operation
}
