package repository

import (
	"context"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"gorm.io/gorm"
)

// changeLogQueryLimit caps how many audit rows a listing returns
const changeLogQueryLimit = 500

// ChangeLogFilter narrows the audit listing. The To bound is inclusive:
// it is extended to the end of that day.
type ChangeLogFilter struct {
	Username   string
	ActionType string
	Search     string
	From       *time.Time
	To         *time.Time
}

// ChangeLogRepository persists append-only audit entries
type ChangeLogRepository struct {
	db *gorm.DB
}

func NewChangeLogRepository(db *gorm.DB) *ChangeLogRepository {
	return &ChangeLogRepository{db: db}
}

// Create appends one audit entry. Entries are never updated or deleted.
func (r *ChangeLogRepository) Create(ctx context.Context, entry *entity.ChangeLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Find lists the most recent entries matching the filter, capped at 500
func (r *ChangeLogRepository) Find(ctx context.Context, filter ChangeLogFilter) ([]entity.ChangeLog, error) {
	query := r.db.WithContext(ctx).Model(&entity.ChangeLog{})

	if filter.Username != "" {
		query = query.Where("username = ?", filter.Username)
	}
	if filter.ActionType != "" {
		query = query.Where("action_type = ?", filter.ActionType)
	}
	if filter.Search != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		endOfDay := time.Date(filter.To.Year(), filter.To.Month(), filter.To.Day(),
			23, 59, 59, int(time.Second-time.Nanosecond), filter.To.Location())
		query = query.Where("created_at <= ?", endOfDay)
	}

	var entries []entity.ChangeLog
	err := query.
		Order("created_at DESC").
		Limit(changeLogQueryLimit).
		Find(&entries).Error
	return entries, err
}
