package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/config"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/middleware"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRefresh     = errors.New("invalid or revoked refresh token")
)

// AuthService verifies credentials and issues token pairs. Refresh
// tokens are tracked in Redis by jti so logout can revoke them.
type AuthService struct {
	users     *repository.UserRepository
	rdb       *redis.Client
	cfg       config.JWTConfig
	changeLog *ChangeLogService
	logger    *zap.Logger
}

func NewAuthService(users *repository.UserRepository, rdb *redis.Client, cfg config.JWTConfig, changeLog *ChangeLogService, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, rdb: rdb, cfg: cfg, changeLog: changeLog, logger: logger}
}

// TokenPair is the result of a successful login or refresh
type TokenPair struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         *entity.User `json:"user"`
}

// HashPassword computes the stored password digest: SHA-256, hex
// encoded. Kept compatible with the pre-existing user records.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login verifies the credentials and issues a token pair. A successful
// login is audited.
func (s *AuthService) Login(ctx context.Context, username, password, ip string) (*TokenPair, error) {
	user, err := s.users.FindByCredentials(ctx, username, HashPassword(password))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.changeLog.Record(ctx,
		Actor{UserID: user.ID, Username: user.Username, Role: user.Role, IP: ip},
		entity.ActionLogin, "session", user.ID, nil, nil,
		fmt.Sprintf("User %s logged in", user.Username))

	return pair, nil
}

// Refresh rotates a refresh token: the presented jti is revoked and a
// new pair is issued
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidRefresh
	}

	userID, err := s.rdb.Get(ctx, refreshKey(claims.ID)).Result()
	if err != nil || userID != claims.UserID {
		return nil, ErrInvalidRefresh
	}
	s.rdb.Del(ctx, refreshKey(claims.ID))

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefresh
	}
	return s.issueTokens(ctx, user)
}

// Logout revokes the refresh token and audits the action
func (s *AuthService) Logout(ctx context.Context, actor Actor, refreshToken string) {
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err == nil && token.Valid {
		s.rdb.Del(ctx, refreshKey(claims.ID))
	}

	s.changeLog.Record(ctx, actor, entity.ActionLogout, "session", actor.UserID, nil, nil,
		fmt.Sprintf("User %s logged out", actor.Username))
}

// CurrentUser loads the authenticated user record
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *entity.User) (*TokenPair, error) {
	now := time.Now()

	access, err := s.signToken(user, now, s.cfg.AccessTokenExpire, uuid.New().String())
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshJTI := uuid.New().String()
	refresh, err := s.signToken(user, now, s.cfg.RefreshTokenExpire, refreshJTI)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.rdb.Set(ctx, refreshKey(refreshJTI), user.ID, s.cfg.RefreshTokenExpire).Err(); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.cfg.AccessTokenExpire.Seconds()),
		User:         user,
	}, nil
}

func (s *AuthService) signToken(user *entity.User, now time.Time, ttl time.Duration, jti string) (string, error) {
	claims := middleware.JWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func refreshKey(jti string) string {
	return "refresh:" + jti
}
