package repository

import (
	"context"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"gorm.io/gorm"
)

// RequestRepository persists part/station requests
type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// FindAll lists every request, newest first
func (r *RequestRepository) FindAll(ctx context.Context) ([]entity.Request, error) {
	var requests []entity.Request
	err := r.db.WithContext(ctx).
		Order("request_date DESC").
		Find(&requests).Error
	return requests, err
}

// FindByRequester lists one user's requests, newest first
func (r *RequestRepository) FindByRequester(ctx context.Context, username string) ([]entity.Request, error) {
	var requests []entity.Request
	err := r.db.WithContext(ctx).
		Where("requested_by = ?", username).
		Order("request_date DESC").
		Find(&requests).Error
	return requests, err
}

// FindByID looks up one request
func (r *RequestRepository) FindByID(ctx context.Context, id string) (*entity.Request, error) {
	var request entity.Request
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, translate(err)
	}
	return &request, nil
}

// Create inserts a request; the passed struct carries the generated ID
// and timestamps back to the caller
func (r *RequestRepository) Create(ctx context.Context, request *entity.Request) error {
	return translate(r.db.WithContext(ctx).Create(request).Error)
}

// UpdateStatus sets the request status, stamping delivery_date when the
// request is marked delivered
func (r *RequestRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Request, error) {
	updates := map[string]interface{}{"status": status}
	if status == entity.RequestStatusDelivered {
		updates["delivery_date"] = time.Now()
	}
	result := r.db.WithContext(ctx).
		Model(&entity.Request{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes one request
func (r *RequestRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Request{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
