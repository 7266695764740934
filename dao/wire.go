//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewUserBlockDAO,
	NewCheckInDAO,
	NewCheckInLikeDAO,
	NewCheckInCommentDAO,
	wire.Bind(new(QueryEngine), new(*CheckInDAO)),
	wire.Bind(new(BlockReader), new(*UserBlockDAO)),
	wire.Bind(new(UserReader), new(*Users)),
)
