package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// translate maps driver errors to the package sentinels so callers can
// distinguish uniqueness conflicts from generic failures.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

// Repositories aggregates all entity repositories
type Repositories struct {
	Vehicle      *VehicleRepository
	Production   *ProductionRepository
	Request      *RequestRepository
	User         *UserRepository
	ChangeLog    *ChangeLogRepository
	PartLocation *PartLocationRepository
}

// NewRepositories wires every repository over one shared connection
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Vehicle:      NewVehicleRepository(db),
		Production:   NewProductionRepository(db),
		Request:      NewRequestRepository(db),
		User:         NewUserRepository(db),
		ChangeLog:    NewChangeLogRepository(db),
		PartLocation: NewPartLocationRepository(db),
	}
}
