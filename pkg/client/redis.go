package client

import (
	"Moodring/config"
	"Moodring/pkg/log"
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置 redis 或缓存关闭时返回 nil，调用方按无缓存处理
func NewRedisClient(conf *config.Config) *redis.Client {
	if conf.Redis == nil || conf.Cache.Disabled {
		log.L.Info("redis disabled, snapshot cache off")
		return nil
	}
	rc := conf.Redis
	client := redis.NewClient(&redis.Options{
		Addr:        rc.Addr(),
		Password:    rc.Password,
		Username:    rc.Username,
		DB:          rc.Database,
		PoolSize:    rc.PoolSize,
		DialTimeout: rc.DialTimeout(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), rc.DialTimeout())
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.L.Fatal("connect redis error", zap.String("addr", rc.Addr()), zap.Error(err))
	}
	log.L.Info("redis client success", zap.String("addr", rc.Addr()))
	return client
}
