package system

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMonitor struct {
	healthy bool
}

func (s stubMonitor) Health() bool {
	return s.healthy
}

func (s stubMonitor) Report(_ error) {}

func TestHandler(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "snowflake_handler_test_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	testCases := []struct {
		name     string
		healthy  bool
		url      string
		wantCode int
		wantBody string
	}{
		{name: "健康", healthy: true, url: "/health", wantCode: http.StatusOK, wantBody: `{"errorCode":0,"message":"","data":"UP"}`},
		{name: "不健康", healthy: false, url: "/health", wantCode: http.StatusServiceUnavailable,
			wantBody: `{"errorCode":503,"message":"数据库不可用"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			NewHandler(stubMonitor{healthy: tc.healthy}, registry).PublicRoutes(server)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tc.url, nil))
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.JSONEq(t, tc.wantBody, recorder.Body.String())
		})
	}

	t.Run("指标", func(t *testing.T) {
		server := gin.New()
		NewHandler(stubMonitor{healthy: true}, registry).PublicRoutes(server)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "snowflake_handler_test_total 1")
	})
}
