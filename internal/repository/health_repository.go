package repository

import (
	"context"

	"gorm.io/gorm"
)

type HealthRepository interface {
	Ping(ctx context.Context) (int, error)
}

type healthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{db}
}

// Ping ejecuta SELECT 1 contra el pool.
func (r *healthRepository) Ping(ctx context.Context) (int, error) {
	var result int
	if err := r.db.WithContext(ctx).Raw("SELECT 1 AS result").Scan(&result).Error; err != nil {
		return 0, classify("health", err)
	}
	return result, nil
}
