package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/shared/telegram"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// notifyEnabledKey is the remotely configured switch for the
// notification sink. Missing key means enabled.
const notifyEnabledKey = "notify:enabled"

// ChangeLogService appends audit entries and dispatches best-effort
// notifications. The audit trail is advisory: persistence failure is
// logged and never aborts the caller's primary operation.
type ChangeLogService struct {
	repo   *repository.ChangeLogRepository
	rdb    *redis.Client
	bot    *telegram.Client
	logger *zap.Logger
}

func NewChangeLogService(repo *repository.ChangeLogRepository, rdb *redis.Client, bot *telegram.Client, logger *zap.Logger) *ChangeLogService {
	return &ChangeLogService{repo: repo, rdb: rdb, bot: bot, logger: logger}
}

// Record persists one audit entry and fires the notification task.
// Always returns nil on persistence failure.
func (s *ChangeLogService) Record(ctx context.Context, actor Actor, actionType, entityType, entityID string, oldValues, newValues entity.JSONB, description string) *entity.ChangeLog {
	entry := &entity.ChangeLog{
		ID:          uuid.New().String()[:32],
		Username:    actor.Username,
		UserRole:    actor.Role,
		ActionType:  actionType,
		EntityType:  entityType,
		EntityID:    entityID,
		OldValues:   oldValues,
		NewValues:   newValues,
		Description: description,
		IPAddress:   actor.IP,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to persist change log entry",
			zap.String("action", actionType),
			zap.String("entity_type", entityType),
			zap.Error(err))
		return nil
	}

	// Detached from the request lifecycle; failures stay in the logs.
	go s.notify(entry)

	return entry
}

// List returns the most recent entries matching the filter, capped by
// the repository
func (s *ChangeLogService) List(ctx context.Context, filter repository.ChangeLogFilter) ([]entity.ChangeLog, error) {
	return s.repo.Find(ctx, filter)
}

// SetNotifyEnabled flips the remote notification switch
func (s *ChangeLogService) SetNotifyEnabled(ctx context.Context, enabled bool) error {
	if s.rdb == nil {
		return fmt.Errorf("notification switch requires redis")
	}
	val := "1"
	if !enabled {
		val = "0"
	}
	return s.rdb.Set(ctx, notifyEnabledKey, val, 0).Err()
}

// NotifyEnabled reports the current switch state
func (s *ChangeLogService) NotifyEnabled(ctx context.Context) bool {
	return s.notifyEnabled(ctx)
}

func (s *ChangeLogService) notify(entry *entity.ChangeLog) {
	if s.bot == nil || !s.bot.Configured() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if !s.notifyEnabled(ctx) {
		return
	}

	text := fmt.Sprintf("<b>%s</b> %s %s\n%s",
		entry.Username, entry.ActionType, entry.EntityType, entry.Description)
	if err := s.bot.SendMessage(ctx, text); err != nil {
		s.logger.Warn("Failed to deliver audit notification",
			zap.String("action", entry.ActionType),
			zap.Error(err))
	}
}

// notifyEnabled reads the remote switch; any read failure disables
// delivery for this entry only
func (s *ChangeLogService) notifyEnabled(ctx context.Context) bool {
	if s.rdb == nil {
		return true
	}
	val, err := s.rdb.Get(ctx, notifyEnabledKey).Result()
	if err == redis.Nil {
		return true
	}
	if err != nil {
		s.logger.Warn("Failed to read notification switch", zap.Error(err))
		return false
	}
	return val != "0" && val != "false"
}
