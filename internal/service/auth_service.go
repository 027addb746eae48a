package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/book-registry/internal/auth"
	"github.com/spec-kit/book-registry/internal/config"
	"github.com/spec-kit/book-registry/internal/repository"
	apperrors "github.com/spec-kit/book-registry/pkg/util"
)

// AuthService coordinates the login flow.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
	limiter  LoginLimiter
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, limiter LoginLimiter) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		limiter:  limiter,
	}
}

// Login exchanges an email and password for an access token. Unknown
// accounts and wrong passwords surface as the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.limiter != nil && s.limiter.Blocked(ctx, email) {
		return "", time.Time{}, apperrors.NewRateLimited("too many failed login attempts")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.recordFailure(ctx, email)
			return "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", time.Time{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.recordFailure(ctx, email)
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	if s.limiter != nil {
		s.limiter.Reset(ctx, email)
	}

	return s.tokenMgr.GenerateToken(user.Email)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter != nil {
		s.limiter.RecordFailure(ctx, email)
	}
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
