package service

import (
	"errors"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/config"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/shared/telegram"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrValidation marks input errors caught before any store call
var ErrValidation = errors.New("validation failed")

// Actor identifies who performed an operation, for auditing
type Actor struct {
	UserID   string
	Username string
	Role     string
	IP       string
}

// Services aggregates all business services
type Services struct {
	Auth       *AuthService
	Vehicle    *VehicleService
	Production *ProductionService
	Request    *RequestService
	User       *UserService
	ChangeLog    *ChangeLogService
	Snapshot     *SnapshotService
	Dashboard    *DashboardService
	Export       *ExportService
	PartLocation *PartLocationService
}

// NewServices wires every service with its dependencies
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger, bot *telegram.Client) *Services {
	changeLog := NewChangeLogService(repos.ChangeLog, rdb, bot, logger)
	snapshot := NewSnapshotService(repos, logger)

	return &Services{
		Auth:         NewAuthService(repos.User, rdb, cfg.JWT, changeLog, logger),
		Vehicle:      NewVehicleService(repos.Vehicle, repos.Production, changeLog),
		Production:   NewProductionService(repos.Production, changeLog),
		Request:      NewRequestService(repos.Request, changeLog),
		User:         NewUserService(repos.User, changeLog),
		ChangeLog:    changeLog,
		Snapshot:     snapshot,
		Dashboard:    NewDashboardService(snapshot),
		Export:       NewExportService(snapshot, cfg.MinIO, logger),
		PartLocation: NewPartLocationService(repos.PartLocation),
	}
}
