package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
	"github.com/google/uuid"
)

const minPasswordLength = 6

// UserService manages user accounts. All operations here are restricted
// to the master admin at the routing layer.
type UserService struct {
	users     *repository.UserRepository
	changeLog *ChangeLogService
}

func NewUserService(users *repository.UserRepository, changeLog *ChangeLogService) *UserService {
	return &UserService{users: users, changeLog: changeLog}
}

type CreateUserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Create(ctx context.Context, actor Actor, input *CreateUserInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}
	if !entity.IsValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, input.Role)
	}

	user := &entity.User{
		ID:           uuid.New().String()[:32],
		Username:     username,
		PasswordHash: HashPassword(input.Password),
		Role:         input.Role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.changeLog.Record(ctx, actor, entity.ActionCreate, "user", user.ID,
		nil,
		entity.JSONB{"username": user.Username, "role": user.Role},
		fmt.Sprintf("Created user %s with role %s", user.Username, user.Role))

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor Actor, id string) error {
	before, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if before.Role == entity.RoleMasterAdmin {
		return fmt.Errorf("%w: the master admin account cannot be deleted", ErrValidation)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.changeLog.Record(ctx, actor, entity.ActionDelete, "user", id,
		entity.JSONB{"username": before.Username, "role": before.Role},
		nil,
		fmt.Sprintf("Deleted user %s", before.Username))

	return nil
}

func (s *UserService) UpdateRole(ctx context.Context, actor Actor, id, role string) (*entity.User, error) {
	if !entity.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	before, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if before.Role == entity.RoleMasterAdmin {
		return nil, fmt.Errorf("%w: the master admin role cannot be changed", ErrValidation)
	}

	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}

	s.changeLog.Record(ctx, actor, entity.ActionUpdate, "user", id,
		entity.JSONB{"role": before.Role},
		entity.JSONB{"role": role},
		fmt.Sprintf("Changed role of %s from %s to %s", before.Username, before.Role, role))

	return s.users.FindByID(ctx, id)
}

func (s *UserService) ResetPassword(ctx context.Context, actor Actor, id, password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	before, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePasswordHash(ctx, id, HashPassword(password)); err != nil {
		return err
	}

	s.changeLog.Record(ctx, actor, entity.ActionUpdate, "user", id,
		nil, nil,
		fmt.Sprintf("Reset password for %s", before.Username))

	return nil
}
