package config

import "fmt"

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Database 数据库配置
type Database struct {
	Driver      string `json:"driver" yaml:"driver"` // mysql | sqlite
	Host        string `json:"host" yaml:"host"`
	Port        int    `json:"port" yaml:"port"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	Database    string `json:"database" yaml:"database"`
	Path        string `json:"path" yaml:"path"` // sqlite 文件路径
	AutoMigrate bool   `json:"auto_migrate" yaml:"auto_migrate"`
}

func (d *Database) Dsn() string {
	if d.Driver == DriverSQLite {
		if d.Path == "" {
			return "file::memory:?cache=shared"
		}
		return d.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}
