package repository

import (
	"context"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"gorm.io/gorm"
)

// ProductionRepository persists per-station status rows
type ProductionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

// FindAll lists every status row ordered by vehicle number
func (r *ProductionRepository) FindAll(ctx context.Context) ([]entity.ProductionStatus, error) {
	var statuses []entity.ProductionStatus
	err := r.db.WithContext(ctx).
		Order("vehicle_number ASC").
		Find(&statuses).Error
	return statuses, err
}

// FindByKey looks up the single row for one (vehicle, station) pair
func (r *ProductionRepository) FindByKey(ctx context.Context, vehicleNumber, stationCode string) (*entity.ProductionStatus, error) {
	var status entity.ProductionStatus
	err := r.db.WithContext(ctx).
		Where("vehicle_number = ? AND station_code = ?", vehicleNumber, stationCode).
		First(&status).Error
	if err != nil {
		return nil, translate(err)
	}
	return &status, nil
}

// UpdateStatus sets the status of one (vehicle, station) row and returns
// the persisted row. Last write wins; there is no version check.
func (r *ProductionRepository) UpdateStatus(ctx context.Context, vehicleNumber, stationCode, status string) (*entity.ProductionStatus, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.ProductionStatus{}).
		Where("vehicle_number = ? AND station_code = ?", vehicleNumber, stationCode).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByKey(ctx, vehicleNumber, stationCode)
}
