package config

import "time"

const defaultCacheTTL = 30 * time.Second

// Cache 查询结果快照缓存
type Cache struct {
	Disabled   bool `json:"disabled" yaml:"disabled"`
	TTLSeconds int  `json:"ttl_seconds" yaml:"ttl_seconds"`
}

func (c *Cache) TTL() time.Duration {
	if c == nil || c.TTLSeconds <= 0 {
		return defaultCacheTTL
	}
	return time.Duration(c.TTLSeconds) * time.Second
}
