// Package mysql opens the MySQL connection and migrates the schema.
package mysql

import (
	"fmt"
	"time"

	"vidcall_server/internal/config"
	"vidcall_server/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init connects to MySQL using cfg and runs AutoMigrate.
// TranslateError is on so unique-key violations surface as gorm.ErrDuplicatedKey.
func Init(cfg *config.MysqlConfig) (*gorm.DB, error) {
	// user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	zap.L().Info("mysql ready", zap.String("host", cfg.Host), zap.String("database", cfg.DatabaseName))
	return db, nil
}

// Migrate creates or updates every table. It never drops columns or data.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Profile{},
		&model.Contact{},
		&model.GroupRoom{},
		&model.RoomParticipant{},
		&model.CallRecord{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
