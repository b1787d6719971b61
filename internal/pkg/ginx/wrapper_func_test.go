package ginx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type echoReq struct {
	Name *string `form:"name" binding:"required"`
}

func TestWrappers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.GET("/echo", B[echoReq](func(ctx *gin.Context, req echoReq) (Result, error) {
		switch *req.Name {
		case "bad":
			return InvalidParamResult, errors.New("wrap: " + ErrBadRequest.Error())
		case "badwrapped":
			return InvalidParamResult, errors.Join(ErrBadRequest, errors.New("mock"))
		case "fail":
			return Result{Code: 506001, Msg: "系统错误"}, errors.New("mock error")
		}
		return Result{Data: *req.Name}, nil
	}))
	server.GET("/ping", W(func(ctx *gin.Context) (Result, error) {
		return Result{Data: "pong"}, nil
	}))

	testCases := []struct {
		name     string
		url      string
		wantCode int
		wantBody string
	}{
		{name: "成功", url: "/echo?name=tom", wantCode: http.StatusOK, wantBody: `{"errorCode":0,"message":"","data":"tom"}`},
		{name: "缺少参数", url: "/echo", wantCode: http.StatusBadRequest, wantBody: `{"errorCode":400001,"message":"参数错误"}`},
		{name: "业务参数错误", url: "/echo?name=badwrapped", wantCode: http.StatusBadRequest, wantBody: `{"errorCode":400001,"message":"参数错误"}`},
		// 没有用 %w 包装的不算参数错误
		{name: "未包装的错误", url: "/echo?name=bad", wantCode: http.StatusInternalServerError, wantBody: `{"errorCode":400001,"message":"参数错误"}`},
		{name: "系统错误", url: "/echo?name=fail", wantCode: http.StatusInternalServerError, wantBody: `{"errorCode":506001,"message":"系统错误"}`},
		{name: "无参数", url: "/ping", wantCode: http.StatusOK, wantBody: `{"errorCode":0,"message":"","data":"pong"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, recorder.Body.String())
			}
		})
	}
}
