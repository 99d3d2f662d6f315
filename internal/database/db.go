package database

import (
	"pharmatrade/internal/logger"
	"pharmatrade/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection opens the postgres pool and migrates the shipments table.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(logger.Log),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Shipment{}); err != nil {
		logger.Log.WithError(err).Warn("Failed to auto-migrate models")
	}

	return db, nil
}
