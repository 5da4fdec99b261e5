package repository

import (
	"context"

	"gorm.io/gorm"

	"plate-check-service/internal/model"
)

type AllowedPlateRepository struct {
	db *gorm.DB
}

func NewAllowedPlateRepository(db *gorm.DB) *AllowedPlateRepository {
	return &AllowedPlateRepository{db: db}
}

// ListPlateNumbers returns every plate number stored in allowed_plates.
func (r *AllowedPlateRepository) ListPlateNumbers(ctx context.Context) ([]string, error) {
	var plates []string
	err := r.db.WithContext(ctx).
		Model(&model.AllowedPlate{}).
		Order("plate_number").
		Pluck("plate_number", &plates).Error
	if err != nil {
		return nil, err
	}
	return plates, nil
}
