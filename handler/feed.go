package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Moodring/config"
	"Moodring/internal/feed"
	"Moodring/middleware"
	"Moodring/pkg/context"
	"Moodring/pkg/response"
	"Moodring/service"
	"Moodring/types"
)

type Feed struct {
	Config      *config.Config
	FeedService service.IFeedService
}

func (f *Feed) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1")
	g.GET("/feed", authorize, context.Wrap(f.GetFeed))
}

// GetFeed 公开打卡信息流
// sort: timestamp | hottest | relevance，缺省 relevance
func (f *Feed) GetFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}
	strategy, err := feed.ParseStrategy(req.Sort)
	if err != nil {
		return response.BadRequest(err.Error())
	}

	items, err := f.FeedService.GetFeed(c.Request.Context(), userID, service.FeedQuery{
		Strategy: strategy,
		Skip:     req.Skip,
		Limit:    limitOrDefault(req.Limit),
	})
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}
