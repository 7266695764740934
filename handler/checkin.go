package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Moodring/config"
	"Moodring/middleware"
	"Moodring/pkg/context"
	"Moodring/pkg/response"
	"Moodring/service"
	"Moodring/types"
)

type CheckIn struct {
	Config          *config.Config
	CheckInService  service.ICheckInService
	LikeService     service.ILikeService
	CommentsService service.ICommentsService
}

func (h *CheckIn) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/checkins", authorize)
	g.POST("", context.Wrap(h.Create))
	g.DELETE("/:id", context.Wrap(h.Delete))
	g.POST("/:id/like", context.Wrap(h.Like))
	g.DELETE("/:id/like", context.Wrap(h.Unlike))
	g.POST("/:id/comments", context.Wrap(h.CreateComment))
	g.GET("/:id/comments", context.Wrap(h.ListComments))
}

// Create 新建打卡
func (h *CheckIn) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	item, err := h.CheckInService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}

// Delete 删除自己的打卡
func (h *CheckIn) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.CheckInService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

// Like 点赞
func (h *CheckIn) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	created, err := h.LikeService.Like(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}

	response.Success(c, types.LikeResponse{Liked: true, Changed: created})
	return nil
}

// Unlike 取消点赞
func (h *CheckIn) Unlike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	removed, err := h.LikeService.Unlike(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}

	response.Success(c, types.LikeResponse{Liked: false, Changed: removed})
	return nil
}

// CreateComment 发表评论
func (h *CheckIn) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	resp, err := h.CommentsService.CreateComment(c.Request.Context(), userID, id, &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// ListComments 评论列表，按时间正序
func (h *CheckIn) ListComments(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req types.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	list, err := h.CommentsService.ListComments(c.Request.Context(), userID, id, req.Skip, limitOrDefault(req.Limit))
	if err != nil {
		return err
	}

	response.Success(c, list)
	return nil
}
