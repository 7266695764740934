package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Database *Database `json:"database" yaml:"database"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Cache    *Cache    `json:"cache" yaml:"cache"`
	Server   *Server   `json:"server" yaml:"server"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}
	return conf
}

// Parse 解析 yaml 内容并补齐默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	if conf.App == nil {
		conf.App = &App{}
	}
	if conf.Server == nil {
		conf.Server = &Server{}
	}
	if conf.Server.Http == 0 {
		conf.Server.Http = 8080
	}
	if conf.Database == nil {
		conf.Database = &Database{}
	}
	if conf.Database.Driver == "" {
		conf.Database.Driver = DriverMySQL
	}
	if conf.Cache == nil {
		conf.Cache = &Cache{}
	}
	if conf.Jwt == nil {
		conf.Jwt = &Jwt{}
	}
	if _, err := conf.App.Location(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

// ProvideLocation 全局统一的"自然日"时区
func ProvideLocation(cfg *Config) (*time.Location, error) {
	return cfg.App.Location()
}
