package ginx

import (
	"errors"
)

// ErrBadRequest 业务返回这个错误时响应 400，响应体使用业务给的 Result
var ErrBadRequest = errors.New("bad request")
