package config

import "time"

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// Node 雪花算法节点号，多实例部署时各不相同
	Node int64 `json:"node" yaml:"node"`
	// Timezone 连续打卡、统计窗口、星期分组共用的日界时区，默认 UTC
	Timezone string `json:"timezone" yaml:"timezone"`
}

func (a *App) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(a.Timezone)
}
