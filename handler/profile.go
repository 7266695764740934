package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Moodring/config"
	"Moodring/internal/analytics"
	"Moodring/middleware"
	"Moodring/pkg/context"
	"Moodring/pkg/response"
	"Moodring/service"
	"Moodring/types"
)

type Profile struct {
	Config           *config.Config
	ProfileService   service.IProfileService
	AnalyticsService service.IAnalyticsService
}

func (p *Profile) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	g := r.Group("/v1/profile")
	g.GET("/summary", authorize, context.Wrap(p.GetSummary))
	g.GET("/analytics", authorize, context.Wrap(p.GetAnalytics))
}

// GetSummary 个人主页概览
func (p *Profile) GetSummary(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := p.ProfileService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// GetAnalytics 情绪统计
// period: week | month | 3months | year | all，缺省 week
func (p *Profile) GetAnalytics(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.AnalyticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}
	period, err := analytics.ParsePeriod(req.Period)
	if err != nil {
		return response.BadRequest(err.Error())
	}

	resp, err := p.AnalyticsService.GetAnalytics(c.Request.Context(), userID, period)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}
