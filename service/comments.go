package service

import (
	"context"
	"strings"
	"time"

	"Moodring/dao"
	"Moodring/models"
	"Moodring/pkg/response"
	"Moodring/pkg/snowflake"
	"Moodring/types"
)

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	CreateComment(ctx context.Context, userID, checkInID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error)
	ListComments(ctx context.Context, userID, checkInID uint64, offset, limit int) ([]*types.CommentResponse, error)
}

type CommentsService struct {
	CheckInDAO *dao.CheckInDAO
	CommentDAO *dao.CheckInCommentDAO
	Visibility IVisibilityService
	Now        Clock
}

func toCommentResponse(c *models.CheckInComment) *types.CommentResponse {
	return &types.CommentResponse{
		ID:        c.ID,
		CheckInID: c.CheckInID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		Timestamp: c.CreatedAt,
	}
}

func (s *CommentsService) CreateComment(ctx context.Context, userID, checkInID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.BadRequest("评论内容不能为空")
	}
	if _, err := visibleCheckIn(ctx, s.CheckInDAO, s.Visibility, userID, checkInID); err != nil {
		return nil, err
	}

	comment := &models.CheckInComment{
		ID:        snowflake.GenID(),
		CheckInID: checkInID,
		AuthorID:  userID,
		Content:   content,
		CreatedAt: s.Now().Truncate(time.Millisecond),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

// ListComments 按时间正序
func (s *CommentsService) ListComments(ctx context.Context, userID, checkInID uint64, offset, limit int) ([]*types.CommentResponse, error) {
	if _, err := visibleCheckIn(ctx, s.CheckInDAO, s.Visibility, userID, checkInID); err != nil {
		return nil, err
	}
	comments, err := s.CommentDAO.ListByCheckIn(ctx, checkInID, offset, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*types.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	return out, nil
}
