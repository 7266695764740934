package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"Moodring/dao"
	"Moodring/dao/cache"
	"Moodring/models"
	"Moodring/pkg/response"
	"Moodring/pkg/snowflake"
	"Moodring/types"
)

var _ ICheckInService = (*CheckInService)(nil)

type ICheckInService interface {
	Create(ctx context.Context, uid uint64, req *types.CreateCheckInRequest) (*types.CheckInItem, error)
	Delete(ctx context.Context, uid, checkInID uint64) error
}

type CheckInService struct {
	CheckInDAO *dao.CheckInDAO
	Users      dao.UserReader
	Cache      *cache.SnapshotStorage
	Now        Clock
}

// cleanTags 去掉首尾空白与空标签，保留顺序与重复
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *CheckInService) Create(ctx context.Context, uid uint64, req *types.CreateCheckInRequest) (*types.CheckInItem, error) {
	attrs := req.Emotion.Attributes
	if attrs.Pleasantness == nil || attrs.Intensity == nil || attrs.Control == nil || attrs.Clarity == nil {
		return nil, response.BadRequest("emotion.attributes 缺少维度")
	}
	name := strings.TrimSpace(req.Emotion.Name)
	if name == "" {
		return nil, response.BadRequest("emotion.name 不能为空")
	}
	privacy := models.Privacy(req.Privacy)
	if privacy == "" {
		privacy = models.PrivacyPublic
	}
	if !privacy.Valid() {
		return nil, response.BadRequest("privacy 取值错误")
	}

	user, err := s.Users.FindUser(ctx, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return nil, response.NotFound("用户不存在")
	}
	if err != nil {
		return nil, err
	}

	c := &models.CheckIn{
		ID:          snowflake.GenID(),
		AuthorID:    uid,
		EmotionName: name,
		Attributes: models.Attributes{
			Pleasantness: *attrs.Pleasantness,
			Intensity:    *attrs.Intensity,
			Control:      *attrs.Control,
			Clarity:      *attrs.Clarity,
		},
		Reason:     strings.TrimSpace(req.Reason),
		People:     cleanTags(req.People),
		Activities: cleanTags(req.Activities),
		Privacy:    privacy,
		OccurredAt: s.Now(),
	}
	if req.Timestamp != nil {
		c.OccurredAt = *req.Timestamp
	}
	if loc := req.Location; loc != nil {
		c.LandmarkName = loc.LandmarkName
		c.Longitude = loc.Longitude
		c.Latitude = loc.Latitude
	}

	if err := s.CheckInDAO.Create(ctx, c); err != nil {
		return nil, err
	}
	s.Cache.InvalidateUser(ctx, uid)
	return types.NewCheckInItem(c, user.Username), nil
}

// Delete 仅作者本人可删除
func (s *CheckInService) Delete(ctx context.Context, uid, checkInID uint64) error {
	c, err := s.CheckInDAO.FindByID(ctx, checkInID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return response.NotFound("打卡不存在")
	}
	if err != nil {
		return err
	}
	if c.AuthorID != uid {
		return response.Forbidden("只能删除自己的打卡")
	}

	if err := s.CheckInDAO.Delete(ctx, checkInID); err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return response.NotFound("打卡不存在")
		}
		return err
	}
	s.Cache.InvalidateUser(ctx, uid)
	if c.Privacy == models.PrivacyPublic {
		s.Cache.BumpFeedGeneration(ctx)
	}
	return nil
}

// visibleCheckIn 点赞、评论前的可见性校验
// 私密打卡、以及与查看者存在任一方向拉黑关系的作者的打卡，对查看者视同不存在
func visibleCheckIn(ctx context.Context, checkIns *dao.CheckInDAO, visibility IVisibilityService, viewer, checkInID uint64) (*models.CheckIn, error) {
	c, err := checkIns.FindByID(ctx, checkInID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return nil, response.NotFound("打卡不存在")
	}
	if err != nil {
		return nil, err
	}
	if c.AuthorID == viewer {
		return c, nil
	}
	if c.Privacy == models.PrivacyPrivate {
		return nil, response.NotFound("打卡不存在")
	}
	exclude, err := visibility.ExcludedAuthors(ctx, viewer)
	if err != nil {
		return nil, err
	}
	if slices.Contains(exclude, c.AuthorID) {
		return nil, response.NotFound("打卡不存在")
	}
	return c, nil
}
