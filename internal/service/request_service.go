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

// RequestService manages part and station requests
type RequestService struct {
	requests  *repository.RequestRepository
	changeLog *ChangeLogService
}

func NewRequestService(requests *repository.RequestRepository, changeLog *ChangeLogService) *RequestService {
	return &RequestService{requests: requests, changeLog: changeLog}
}

// CreateRequestInput carries a new request. Part number, qty and the
// fastener flag only apply to part requests.
type CreateRequestInput struct {
	VehicleType   string `json:"vehicle_type" binding:"required"`
	VehicleNumber string `json:"vehicle_number" binding:"required"`
	StationCode   string `json:"station_code" binding:"required"`
	RequestType   string `json:"request_type" binding:"required"`
	PartNumber    string `json:"part_number"`
	Qty           *int   `json:"qty"`
	Fastener      *bool  `json:"fastener"`
}

// List returns requests scoped by role: customers see only their own
// rows, everyone else sees all. The filter is applied afterwards.
func (s *RequestService) List(ctx context.Context, actor Actor, filter analytics.RequestFilter) ([]entity.Request, error) {
	var (
		requests []entity.Request
		err      error
	)
	if actor.Role == entity.RoleCustomer {
		requests, err = s.requests.FindByRequester(ctx, actor.Username)
	} else {
		requests, err = s.requests.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return filter.Apply(requests), nil
}

// Create validates and inserts a new request. Validation runs before
// any store call.
func (s *RequestService) Create(ctx context.Context, actor Actor, input *CreateRequestInput) (*entity.Request, error) {
	if err := validateRequestInput(input); err != nil {
		return nil, err
	}

	request := &entity.Request{
		ID:            uuid.New().String()[:32],
		VehicleType:   input.VehicleType,
		VehicleNumber: strings.TrimSpace(input.VehicleNumber),
		StationCode:   input.StationCode,
		RequestType:   input.RequestType,
		Status:        entity.RequestStatusOpen,
		RequestedBy:   actor.Username,
		RequestDate:   time.Now(),
	}
	if input.RequestType == entity.RequestTypePart {
		request.PartNumber = strings.TrimSpace(input.PartNumber)
		request.Qty = input.Qty
		request.Fastener = input.Fastener
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	s.changeLog.Record(ctx, actor, entity.ActionCreate, "request", request.ID,
		nil,
		entity.JSONB{
			"vehicle_number": request.VehicleNumber,
			"station_code":   request.StationCode,
			"request_type":   request.RequestType,
			"part_number":    request.PartNumber,
		},
		fmt.Sprintf("Created %s request for %s at %s", request.RequestType, request.VehicleNumber, request.StationCode))

	return request, nil
}

// MarkDelivered transitions a request from open to delivered, the only
// allowed status change, and stamps the delivery date
func (s *RequestService) MarkDelivered(ctx context.Context, actor Actor, id string) (*entity.Request, error) {
	before, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if before.Status != entity.RequestStatusOpen {
		return nil, fmt.Errorf("%w: request is already %s", ErrValidation, before.Status)
	}

	updated, err := s.requests.UpdateStatus(ctx, id, entity.RequestStatusDelivered)
	if err != nil {
		return nil, err
	}

	s.changeLog.Record(ctx, actor, entity.ActionUpdate, "request", id,
		entity.JSONB{"status": before.Status},
		entity.JSONB{"status": updated.Status},
		fmt.Sprintf("Marked request for %s at %s as delivered", updated.VehicleNumber, updated.StationCode))

	return updated, nil
}

// Delete removes one request
func (s *RequestService) Delete(ctx context.Context, actor Actor, id string) error {
	before, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.requests.Delete(ctx, id); err != nil {
		return err
	}

	s.changeLog.Record(ctx, actor, entity.ActionDelete, "request", id,
		entity.JSONB{
			"vehicle_number": before.VehicleNumber,
			"station_code":   before.StationCode,
			"request_type":   before.RequestType,
			"status":         before.Status,
		},
		nil,
		fmt.Sprintf("Deleted %s request for %s at %s", before.RequestType, before.VehicleNumber, before.StationCode))

	return nil
}

func validateRequestInput(input *CreateRequestInput) error {
	if !entity.IsValidVehicleType(input.VehicleType) {
		return fmt.Errorf("%w: unknown vehicle type %q", ErrValidation, input.VehicleType)
	}
	switch input.RequestType {
	case entity.RequestTypeStation:
	case entity.RequestTypePart:
		if strings.TrimSpace(input.PartNumber) == "" {
			return fmt.Errorf("%w: part number is required for part requests", ErrValidation)
		}
		if input.Qty == nil || *input.Qty <= 0 {
			return fmt.Errorf("%w: quantity is required for part requests", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown request type %q", ErrValidation, input.RequestType)
	}
	return nil
}
