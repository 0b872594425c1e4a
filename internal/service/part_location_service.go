package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
)

// PartLocationService looks up warehouse locations for part numbers
type PartLocationService struct {
	locations *repository.PartLocationRepository
}

func NewPartLocationService(locations *repository.PartLocationRepository) *PartLocationService {
	return &PartLocationService{locations: locations}
}

func (s *PartLocationService) Lookup(ctx context.Context, partNo string) ([]entity.PartLocation, error) {
	partNo = strings.TrimSpace(partNo)
	if partNo == "" {
		return nil, fmt.Errorf("%w: part number is required", ErrValidation)
	}
	return s.locations.FindByPartNo(ctx, partNo)
}
