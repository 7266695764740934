package response

import (
	"Moodring/pkg/log"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// BadRequest 参数校验失败，请求在访问存储前被拒绝
func BadRequest(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

func NotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

func Forbidden(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}

// ErrorMiddleware 兜底 panic 以及 c.Error 挂载的错误
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				Fail(c, http.StatusInternalServerError, InternalMsg)
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			Write(c, c.Errors.Last().Err)
			c.Abort()
		}
	}
}

// Write 业务错误原样返回，其余错误记日志后返回通用 500
func Write(c *gin.Context, err error) {
	var be *BizError
	if errors.As(err, &be) {
		Fail(c, be.Code, be.Msg)
		return
	}
	log.L.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Fail(c, http.StatusInternalServerError, InternalMsg)
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
