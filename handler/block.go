package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Moodring/config"
	"Moodring/middleware"
	"Moodring/pkg/context"
	"Moodring/pkg/response"
	"Moodring/service"
)

type Block struct {
	Config       *config.Config
	BlockService service.IBlockService
}

func (b *Block) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(b.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.POST("/:user_id/block", authorize, context.Wrap(b.BlockUser))
	g.DELETE("/:user_id/block", authorize, context.Wrap(b.UnblockUser))
}

// BlockUser 拉黑用户，双方互相不可见
func (b *Block) BlockUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	target, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	if err := b.BlockService.Block(c.Request.Context(), userID, target); err != nil {
		return err
	}

	response.Success(c, gin.H{"blocked": true})
	return nil
}

// UnblockUser 取消拉黑
func (b *Block) UnblockUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	target, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	if err := b.BlockService.Unblock(c.Request.Context(), userID, target); err != nil {
		return err
	}

	response.Success(c, gin.H{"blocked": false})
	return nil
}
