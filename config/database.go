package config

import (
	"backend/models"
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB opens the database from environment settings and migrates the
// catalog schema. TranslateError is enabled so unique-index violations
// surface as gorm.ErrDuplicatedKey regardless of the driver.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := MigrateAll(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// MigrateAll migrates every catalog table. Kept separate from InitDB so tests
// can run it against their own database.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Genre{},
		&models.Platform{},
		&models.Country{},
		&models.AgeLimit{},
		&models.Director{},
		&models.Actor{},
		&models.Comment{},
		&models.Movie{},
		&models.Series{},
		&models.Activity{},
	)
}
