// Package database owns the Postgres connection and schema migration.
package database

import (
	"fmt"

	"nutrilens-api/internal/core/meal"
	"nutrilens-api/internal/core/user"
	"nutrilens-api/internal/infrastructure/config"
	"nutrilens-api/internal/pkg/common"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and migrates the schema.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormLogLevel := logger.Silent
	if cfg.App.Debug {
		gormLogLevel = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&user.User{}, &meal.Meal{}, &meal.MealItem{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	common.LogInfo("Database connected and migrated")

	return db, nil
}
