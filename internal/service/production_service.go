package service

import (
	"context"
	"fmt"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/analytics"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
)

// ProductionService manages per-station status rows
type ProductionService struct {
	production *repository.ProductionRepository
	changeLog  *ChangeLogService
}

func NewProductionService(production *repository.ProductionRepository, changeLog *ChangeLogService) *ProductionService {
	return &ProductionService{production: production, changeLog: changeLog}
}

// List returns production rows, optionally narrowed by the filter
func (s *ProductionService) List(ctx context.Context, filter analytics.ProductionFilter) ([]entity.ProductionStatus, error) {
	statuses, err := s.production.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(statuses), nil
}

// UpdateStatus sets the status of one (vehicle, station) row. Any
// status may follow any other; concurrent writers race and the last
// write wins.
func (s *ProductionService) UpdateStatus(ctx context.Context, actor Actor, vehicleNumber, stationCode, status string) (*entity.ProductionStatus, error) {
	if !entity.IsValidStationStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	before, err := s.production.FindByKey(ctx, vehicleNumber, stationCode)
	if err != nil {
		return nil, err
	}

	updated, err := s.production.UpdateStatus(ctx, vehicleNumber, stationCode, status)
	if err != nil {
		return nil, err
	}

	s.changeLog.Record(ctx, actor, entity.ActionUpdate, "production_status", updated.ID,
		entity.JSONB{"status": before.Status},
		entity.JSONB{"status": status},
		fmt.Sprintf("Updated %s station %s: %s → %s", vehicleNumber, stationCode, before.Status, status))

	return updated, nil
}
