package system

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-snowflake/internal/pkg/database/monitor"
	"go-snowflake/internal/pkg/ginx"
)

var _ ginx.Handler = &Handler{}

// Handler 健康检查和指标暴露
type Handler struct {
	dbMonitor monitor.DBMonitor
	gatherer  prometheus.Gatherer
}

func NewHandler(dbMonitor monitor.DBMonitor, gatherer prometheus.Gatherer) *Handler {
	return &Handler{dbMonitor: dbMonitor, gatherer: gatherer}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/health", h.Health)
	server.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
}

func (h *Handler) Health(ctx *gin.Context) {
	if !h.dbMonitor.Health() {
		ctx.PureJSON(http.StatusServiceUnavailable, ginx.Result{
			Code: http.StatusServiceUnavailable,
			Msg:  "数据库不可用",
		})
		return
	}
	ctx.PureJSON(http.StatusOK, ginx.Result{Data: "UP"})
}
