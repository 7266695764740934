package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"Moodring/internal/feed"
	"Moodring/pkg/response"
)

// pathID 解析路径中的 uint64 id
func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.BadRequest(name + " 格式错误")
	}
	return id, nil
}

// limitOrDefault 缺省 20，其余截断到 [1,100]
func limitOrDefault(limit *int) int {
	if limit == nil {
		return feed.DefaultLimit
	}
	return feed.ClampLimit(*limit)
}
