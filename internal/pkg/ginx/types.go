package ginx

import "github.com/gin-gonic/gin"

const CodeInvalidParam = 400001

type Handler interface {
	PrivateRoutes(server *gin.Engine)
	PublicRoutes(server *gin.Engine)
}

type Result struct {
	Code int    `json:"errorCode"`
	Msg  string `json:"message"`
	Data any    `json:"data,omitempty"`
}

var InvalidParamResult = Result{
	Code: CodeInvalidParam,
	Msg:  "参数错误",
}
