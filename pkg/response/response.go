package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalMsg 存储/未知错误统一对外文案，不暴露查询细节
const InternalMsg = "internal server error"

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Msg:  "ok",
		Data: data,
	})
}

// Fail 以业务码作为 HTTP 状态返回
func Fail(c *gin.Context, code int, msg string) {
	status := code
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, Response{
		Code: code,
		Msg:  msg,
	})
}
