package database

import (
	"Moodring/config"
	"Moodring/models"
	"Moodring/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, error) {
	gormConf := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if conf.Debug() {
		gormConf.Logger = logger.Default.LogMode(logger.Info)
	}

	var dialector gorm.Dialector
	switch conf.Database.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.Database.Dsn())
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.Database.Dsn())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", conf.Database.Driver)
	}

	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, err
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))

	if conf.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate 同步表结构
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserBlock{},
		&models.CheckIn{},
		&models.CheckInLike{},
		&models.CheckInComment{},
	)
	if err != nil {
		return fmt.Errorf("database.Migrate error: %w", err)
	}
	return nil
}
