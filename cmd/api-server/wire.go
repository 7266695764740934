//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"Moodring/config"
	"Moodring/dao"
	"Moodring/dao/cache"
	"Moodring/handler"
	"Moodring/pkg/client"
	"Moodring/pkg/database"
	"Moodring/pkg/server"
	"Moodring/service"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		client.NewRedisClient,
		config.ProvideLocation,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Feed), "*"),
		wire.Struct(new(handler.Profile), "*"),
		wire.Struct(new(handler.CheckIn), "*"),
		wire.Struct(new(handler.Block), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil, nil
}
