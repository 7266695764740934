package service

import (
	"context"

	"Moodring/dao"
)

var _ ILikeService = (*LikeService)(nil)

// ILikeService 返回值表示本次调用是否改变了点赞状态
type ILikeService interface {
	Like(ctx context.Context, userID, checkInID uint64) (bool, error)
	Unlike(ctx context.Context, userID, checkInID uint64) (bool, error)
}

type LikeService struct {
	CheckInDAO *dao.CheckInDAO
	LikeDAO    *dao.CheckInLikeDAO
	Visibility IVisibilityService
}

// Like 重复点赞不报错，也不重复计数
func (s *LikeService) Like(ctx context.Context, userID, checkInID uint64) (bool, error) {
	if _, err := visibleCheckIn(ctx, s.CheckInDAO, s.Visibility, userID, checkInID); err != nil {
		return false, err
	}
	return s.LikeDAO.Like(ctx, checkInID, userID)
}

func (s *LikeService) Unlike(ctx context.Context, userID, checkInID uint64) (bool, error) {
	if _, err := visibleCheckIn(ctx, s.CheckInDAO, s.Visibility, userID, checkInID); err != nil {
		return false, err
	}
	return s.LikeDAO.Unlike(ctx, checkInID, userID)
}
