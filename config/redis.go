package config

import (
	"fmt"
	"time"
)

// Redis 快照缓存使用的 redis，不配置时缓存关闭
type Redis struct {
	Address       string `json:"address" yaml:"address"`
	Port          int    `json:"port" yaml:"port"`
	Username      string `json:"username" yaml:"username"`
	Password      string `json:"password" yaml:"password"`
	Database      int    `json:"database" yaml:"database"`
	PoolSize      int    `json:"pool_size" yaml:"pool_size"`
	DialTimeoutMs int    `json:"dial_timeout_ms" yaml:"dial_timeout_ms"`
}

func (r *Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Address, r.Port)
}

// DialTimeout 默认 3 秒
func (r *Redis) DialTimeout() time.Duration {
	if r.DialTimeoutMs <= 0 {
		return 3 * time.Second
	}
	return time.Duration(r.DialTimeoutMs) * time.Millisecond
}
