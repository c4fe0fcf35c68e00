package config

import (
	"fmt"
	"time"

	"recipai-backend/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the shared connection pool. DATABASE_URL wins when set
// (Heroku-style deployments); otherwise the DSN is composed from discrete
// variables, with encrypted transport required in production.
func ConnectDB() (*gorm.DB, error) {
	dsn := utils.GetConfig("DATABASE_URL")
	if dsn == "" {
		sslmode := "disable"
		if utils.GetConfig("IsProd") == "true" {
			sslmode = "require"
		}
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
			sslmode,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Requests block for a connection when the pool is exhausted rather
	// than failing outright.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
