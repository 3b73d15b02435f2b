package database

import (
	"context"
	"fmt"
	"log/slog"

	"eventPlanner/configs"
	"eventPlanner/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres with the database.* settings and migrates the
// schema.
func Open(config *configs.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%v user=%v password=%v dbname=%v port=%v sslmode=%v TimeZone=%v",
		config.Viper.GetString("database.host"),
		config.Viper.GetString("database.user"),
		config.Viper.GetString("database.password"),
		config.Viper.GetString("database.name"),
		config.Viper.GetInt("database.port"),
		config.Viper.GetString("database.ssl"),
		config.Viper.GetString("database.timezone"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.ConferenceElement{},
		&models.ConferenceGroup{},
		&models.ConferenceGuest{},
		&models.TradeshowBooth{},
		&models.TradeshowVendor{},
		&models.TradeshowRoute{},
		&models.EventSession{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	slog.Info("database migrated successfully")
	return nil
}

// Ping checks the underlying connection pool.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
