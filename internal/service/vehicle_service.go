package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/analytics"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
	"github.com/google/uuid"
)

// VehicleService manages vehicles and their fixed station layouts
type VehicleService struct {
	vehicles   *repository.VehicleRepository
	production *repository.ProductionRepository
	changeLog  *ChangeLogService
}

func NewVehicleService(vehicles *repository.VehicleRepository, production *repository.ProductionRepository, changeLog *ChangeLogService) *VehicleService {
	return &VehicleService{vehicles: vehicles, production: production, changeLog: changeLog}
}

// CreateVehicleRequest carries the two fields needed to add a vehicle
type CreateVehicleRequest struct {
	VehicleType   string `json:"vehicle_type" binding:"required"`
	VehicleNumber string `json:"vehicle_number" binding:"required"`
}

// VehicleWithProgress pairs a vehicle with its station completion
type VehicleWithProgress struct {
	entity.Vehicle
	Progress analytics.Progress `json:"progress"`
}

// List returns all vehicles in display order with per-vehicle progress
func (s *VehicleService) List(ctx context.Context) ([]VehicleWithProgress, error) {
	vehicles, err := s.vehicles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	statuses, err := s.production.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sorted := analytics.SortVehicles(vehicles)
	out := make([]VehicleWithProgress, len(sorted))
	for i, v := range sorted {
		out[i] = VehicleWithProgress{
			Vehicle:  v,
			Progress: analytics.VehicleProgress(v.VehicleNumber, statuses),
		}
	}
	return out, nil
}

// Create adds a vehicle and one pending status row per station of its
// type layout, atomically. The station set is fixed at creation.
func (s *VehicleService) Create(ctx context.Context, actor Actor, req *CreateVehicleRequest) (*entity.Vehicle, error) {
	number := strings.TrimSpace(req.VehicleNumber)
	if number == "" {
		return nil, fmt.Errorf("%w: vehicle number is required", ErrValidation)
	}
	layout, ok := entity.StationLayouts[req.VehicleType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", ErrValidation, req.VehicleType)
	}

	vehicle := &entity.Vehicle{
		ID:            uuid.New().String()[:32],
		VehicleNumber: number,
		VehicleType:   req.VehicleType,
		CreatedAt:     time.Now(),
	}

	statuses := make([]entity.ProductionStatus, len(layout))
	now := time.Now()
	for i, station := range layout {
		statuses[i] = entity.ProductionStatus{
			ID:            uuid.New().String()[:32],
			VehicleNumber: number,
			StationCode:   station,
			Status:        entity.StationStatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	if err := s.vehicles.CreateWithStations(ctx, vehicle, statuses); err != nil {
		return nil, err
	}

	s.changeLog.Record(ctx, actor, entity.ActionCreate, "vehicle", vehicle.ID,
		nil,
		entity.JSONB{"vehicle_number": number, "vehicle_type": req.VehicleType},
		fmt.Sprintf("Created vehicle %s (%s) with %d stations", number, req.VehicleType, len(layout)))

	return vehicle, nil
}

// Delete removes a vehicle together with its production rows
func (s *VehicleService) Delete(ctx context.Context, actor Actor, number string) error {
	vehicle, err := s.vehicles.FindByNumber(ctx, number)
	if err != nil {
		return err
	}

	if err := s.vehicles.Delete(ctx, number); err != nil {
		return err
	}

	s.changeLog.Record(ctx, actor, entity.ActionDelete, "vehicle", vehicle.ID,
		entity.JSONB{"vehicle_number": vehicle.VehicleNumber, "vehicle_type": vehicle.VehicleType},
		nil,
		fmt.Sprintf("Deleted vehicle %s", number))

	return nil
}
