package ginx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// W 不需要请求参数的wrapper函数
func W(fn func(ctx *gin.Context) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := fn(ctx)
		render(ctx, res, err)
	}
}

// B 需求请求参数的包裹函数，GET 请求从 query 中绑定
func B[Req any](fn func(ctx *gin.Context, req Req) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.ShouldBind(&req); err != nil {
			slog.Debug("绑定参数失败", slog.Any("err", err))
			ctx.PureJSON(http.StatusBadRequest, InvalidParamResult)
			return
		}
		res, err := fn(ctx, req)
		render(ctx, res, err)
	}
}

func render(ctx *gin.Context, res Result, err error) {
	switch {
	case err == nil:
		ctx.PureJSON(http.StatusOK, res)
	case errors.Is(err, ErrBadRequest):
		slog.Debug("参数错误", slog.Any("err", err))
		ctx.PureJSON(http.StatusBadRequest, res)
	default:
		slog.Error("执行业务逻辑失败", slog.Any("err", err))
		ctx.PureJSON(http.StatusInternalServerError, res)
	}
}
