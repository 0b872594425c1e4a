package service

import (
	"context"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Snapshot is a consistent-enough read of the data the dashboard and
// exports work from. Each slice may be empty if its fetch failed.
type Snapshot struct {
	Vehicles   []entity.Vehicle          `json:"vehicles"`
	Production []entity.ProductionStatus `json:"production"`
	Requests   []entity.Request          `json:"requests"`
	Users      []entity.User             `json:"users,omitempty"`
}

// SnapshotService loads all entity collections in one shot, scoped to
// the caller's role
type SnapshotService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

func NewSnapshotService(repos *repository.Repositories, logger *zap.Logger) *SnapshotService {
	return &SnapshotService{repos: repos, logger: logger}
}

// Load fetches vehicles, production statuses and requests concurrently.
// Customers only get their own requests, and the user list is only
// included for the master admin. A failed fetch logs and leaves that
// slice empty instead of failing the whole snapshot.
func (s *SnapshotService) Load(ctx context.Context, actor Actor) *Snapshot {
	snap := &Snapshot{
		Vehicles:   []entity.Vehicle{},
		Production: []entity.ProductionStatus{},
		Requests:   []entity.Request{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		vehicles, err := s.repos.Vehicle.FindAll(gctx)
		if err != nil {
			s.logger.Error("snapshot: vehicles fetch failed", zap.Error(err))
			return nil
		}
		snap.Vehicles = vehicles
		return nil
	})

	g.Go(func() error {
		production, err := s.repos.Production.FindAll(gctx)
		if err != nil {
			s.logger.Error("snapshot: production fetch failed", zap.Error(err))
			return nil
		}
		snap.Production = production
		return nil
	})

	g.Go(func() error {
		var (
			requests []entity.Request
			err      error
		)
		if actor.Role == entity.RoleCustomer {
			requests, err = s.repos.Request.FindByRequester(gctx, actor.Username)
		} else {
			requests, err = s.repos.Request.FindAll(gctx)
		}
		if err != nil {
			s.logger.Error("snapshot: requests fetch failed", zap.Error(err))
			return nil
		}
		snap.Requests = requests
		return nil
	})

	if actor.Role == entity.RoleMasterAdmin {
		g.Go(func() error {
			users, err := s.repos.User.FindAll(gctx)
			if err != nil {
				s.logger.Error("snapshot: users fetch failed", zap.Error(err))
				return nil
			}
			snap.Users = users
			return nil
		})
	}

	g.Wait()
	return snap
}
