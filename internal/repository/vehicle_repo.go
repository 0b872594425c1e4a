package repository

import (
	"context"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"gorm.io/gorm"
)

// VehicleRepository persists vehicles and their station rows
type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// FindAll lists every vehicle ordered by type
func (r *VehicleRepository) FindAll(ctx context.Context) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	err := r.db.WithContext(ctx).
		Order("vehicle_type ASC").
		Find(&vehicles).Error
	return vehicles, err
}

// FindByNumber looks up one vehicle by its unique number
func (r *VehicleRepository) FindByNumber(ctx context.Context, number string) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.db.WithContext(ctx).
		Where("vehicle_number = ?", number).
		First(&vehicle).Error
	if err != nil {
		return nil, translate(err)
	}
	return &vehicle, nil
}

// CreateWithStations inserts the vehicle plus one pending status row per
// station in a single transaction, so a failed station insert never
// leaves a vehicle without its layout.
func (r *VehicleRepository) CreateWithStations(ctx context.Context, vehicle *entity.Vehicle, statuses []entity.ProductionStatus) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vehicle).Error; err != nil {
			return err
		}
		if len(statuses) == 0 {
			return nil
		}
		return tx.Create(&statuses).Error
	})
	return translate(err)
}

// Delete removes a vehicle and its production rows in one transaction
func (r *VehicleRepository) Delete(ctx context.Context, number string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_number = ?", number).Delete(&entity.ProductionStatus{}).Error; err != nil {
			return err
		}
		return tx.Where("vehicle_number = ?", number).Delete(&entity.Vehicle{}).Error
	})
}
