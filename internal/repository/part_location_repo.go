package repository

import (
	"context"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"gorm.io/gorm"
)

// PartLocationRepository reads the externally maintained part→location
// lookup table
type PartLocationRepository struct {
	db *gorm.DB
}

func NewPartLocationRepository(db *gorm.DB) *PartLocationRepository {
	return &PartLocationRepository{db: db}
}

// FindByPartNo lists every location recorded for one part number
func (r *PartLocationRepository) FindByPartNo(ctx context.Context, partNo string) ([]entity.PartLocation, error) {
	var locations []entity.PartLocation
	err := r.db.WithContext(ctx).
		Where("part_no = ?", partNo).
		Order("loc ASC").
		Find(&locations).Error
	return locations, err
}
