package service

import (
	"context"
	"errors"

	"Moodring/dao"
	"Moodring/dao/cache"
	"Moodring/pkg/response"
)

var _ IBlockService = (*BlockService)(nil)

type IBlockService interface {
	Block(ctx context.Context, blockerID, blockedID uint64) error
	Unblock(ctx context.Context, blockerID, blockedID uint64) error
}

type BlockService struct {
	BlockDAO *dao.UserBlockDAO
	Users    dao.UserReader
	Cache    *cache.SnapshotStorage
}

func (s *BlockService) check(ctx context.Context, blockerID, blockedID uint64) error {
	if blockerID == blockedID {
		return response.BadRequest("不能拉黑自己")
	}
	_, err := s.Users.FindUser(ctx, blockedID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return response.NotFound("用户不存在")
	}
	return err
}

// invalidate 拉黑双向生效，两边的信息流快照都要清理
func (s *BlockService) invalidate(ctx context.Context, a, b uint64) {
	s.Cache.InvalidateFeed(ctx, a)
	s.Cache.InvalidateFeed(ctx, b)
}

// Block 幂等
func (s *BlockService) Block(ctx context.Context, blockerID, blockedID uint64) error {
	if err := s.check(ctx, blockerID, blockedID); err != nil {
		return err
	}
	if err := s.BlockDAO.Block(ctx, blockerID, blockedID); err != nil {
		return err
	}
	s.invalidate(ctx, blockerID, blockedID)
	return nil
}

func (s *BlockService) Unblock(ctx context.Context, blockerID, blockedID uint64) error {
	if err := s.check(ctx, blockerID, blockedID); err != nil {
		return err
	}
	if err := s.BlockDAO.Unblock(ctx, blockerID, blockedID); err != nil {
		return err
	}
	s.invalidate(ctx, blockerID, blockedID)
	return nil
}
