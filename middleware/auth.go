package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Moodring/pkg/context"
	"Moodring/pkg/jwt"
	"Moodring/pkg/response"
)

// Auth 校验 Bearer access token，把查看者 id 放入上下文
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, strings.TrimSpace(raw))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "token 无效或已过期")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}
