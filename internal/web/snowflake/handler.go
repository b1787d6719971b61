package snowflake

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"go-snowflake/internal/domain"
	"go-snowflake/internal/errs"
	"go-snowflake/internal/pkg/ginx"
	snowflakesvc "go-snowflake/internal/service/snowflake"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc snowflakesvc.Service
}

func NewHandler(svc snowflakesvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/snowflake")
	g.GET("/id", ginx.B[GenerateIDReq](h.GenerateID))
	g.GET("/ids", ginx.B[GenerateIDsReq](h.GenerateIDs))
	g.GET("/parse", ginx.B[ParseIDReq](h.ParseID))
	g.GET("/recounter", ginx.W(h.Recounter))
	g.GET("/events", ginx.B[ListEventsReq](h.ListEvents))
}

// GenerateID 生成单个 ID
func (h *Handler) GenerateID(ctx *gin.Context, req GenerateIDReq) (ginx.Result, error) {
	id, err := h.svc.GenerateID(ctx.Request.Context(), *req.BusinessID)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: h.toSnowflakeIDVO(id)}, nil
}

func (h *Handler) GenerateIDs(ctx *gin.Context, req GenerateIDsReq) (ginx.Result, error) {
	ids, err := h.svc.GenerateIDs(ctx.Request.Context(), *req.BusinessID, req.Count)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{
		Data: GenerateIDsResp{
			IDs: slice.Map(ids, func(_ int, src domain.SnowflakeID) SnowflakeID {
				return h.toSnowflakeIDVO(src)
			}),
		},
	}, nil
}

// ParseID 解析 ID 中的各个字段
func (h *Handler) ParseID(ctx *gin.Context, req ParseIDReq) (ginx.Result, error) {
	id, err := strconv.ParseUint(req.ID, 10, 64)
	if err != nil {
		return ginx.InvalidParamResult, fmt.Errorf("%w: id 格式错误 %w", ginx.ErrBadRequest, err)
	}
	parsed, err := h.svc.ParseID(ctx.Request.Context(), id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: h.toSnowflakeIDVO(parsed)}, nil
}

func (h *Handler) Recounter(ctx *gin.Context) (ginx.Result, error) {
	rc, err := h.svc.Recounter(ctx.Request.Context())
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{
		Data: Recounter{
			DatacenterID: rc.DatacenterID,
			MachineID:    rc.MachineID,
			Recount:      rc.Recount,
			Ctime:        rc.Ctime,
			Utime:        rc.Utime,
		},
	}, nil
}

func (h *Handler) ListEvents(ctx *gin.Context, req ListEventsReq) (ginx.Result, error) {
	events, err := h.svc.Events(ctx.Request.Context(), req.Limit)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{
		Data: ListEventsResp{
			Events: slice.Map(events, func(_ int, src domain.Event) Event {
				return Event{
					ID:               src.ID,
					Type:             src.Type.String(),
					Brief:            src.Brief,
					Recount:          src.Detail.Recount,
					LastTimestamp:    src.Detail.LastTimestamp,
					CurrentTimestamp: src.Detail.CurrentTimestamp,
					Error:            src.Detail.Error,
					Ctime:            src.Ctime,
				}
			}),
		},
	}, nil
}

// errorResult 参数错误之外的错误统一返回系统错误，不区分配置错误和存储错误
func (h *Handler) errorResult(err error) (ginx.Result, error) {
	if errors.Is(err, errs.ErrInvalidParameter) {
		return ginx.InvalidParamResult, fmt.Errorf("%w: %w", ginx.ErrBadRequest, err)
	}
	return systemErrorResult, err
}

func (h *Handler) toSnowflakeIDVO(src domain.SnowflakeID) SnowflakeID {
	return SnowflakeID{
		ID:           src.String(),
		Timestamp:    src.Timestamp,
		DatacenterID: src.DatacenterID,
		MachineID:    src.MachineID,
		Recount:      src.Recount,
		BusinessID:   src.BusinessID,
		Sequence:     src.Sequence,
	}
}
