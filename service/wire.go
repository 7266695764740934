package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewClock,

	wire.Struct(new(VisibilityService), "*"),
	wire.Bind(new(IVisibilityService), new(*VisibilityService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(AnalyticsService), "*"),
	wire.Bind(new(IAnalyticsService), new(*AnalyticsService)),

	wire.Struct(new(ProfileService), "*"),
	wire.Bind(new(IProfileService), new(*ProfileService)),

	wire.Struct(new(CheckInService), "*"),
	wire.Bind(new(ICheckInService), new(*CheckInService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(CommentsService), "*"),
	wire.Bind(new(ICommentsService), new(*CommentsService)),

	wire.Struct(new(BlockService), "*"),
	wire.Bind(new(IBlockService), new(*BlockService)),
)
