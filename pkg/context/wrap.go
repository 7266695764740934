package context

import (
	"Moodring/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CtxUserID 鉴权中间件写入的查看者 id
const CtxUserID = "viewer_id"

// HandlerFunc 返回 error 的 gin handler，错误统一交给 response.Write
type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil || c.Writer.Written() {
			return
		}
		response.Write(c, err)
	}
}

// GetUserID 取查看者 id，缺失说明路由没挂鉴权
func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, response.NewError(http.StatusUnauthorized, "未登录")
	}
	uid, ok := v.(uint64)
	if !ok || uid == 0 {
		return 0, response.NewError(http.StatusUnauthorized, "查看者身份无效")
	}
	return uid, nil
}
