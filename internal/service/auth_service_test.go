package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/book-registry/internal/auth"
	"github.com/spec-kit/book-registry/internal/config"
	"github.com/spec-kit/book-registry/internal/domain"
	apperrors "github.com/spec-kit/book-registry/pkg/util"
)

type fakeLimiter struct {
	blocked  bool
	failures int
	resets   int
}

func (f *fakeLimiter) Blocked(ctx context.Context, key string) bool { return f.blocked }
func (f *fakeLimiter) RecordFailure(ctx context.Context, key string) {
	f.failures++
}
func (f *fakeLimiter) Reset(ctx context.Context, key string) { f.resets++ }

type fakeUserLookup struct {
	fakeUserRepo
	users map[string]*domain.User
}

func (f *fakeUserLookup) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func newAuthService(t *testing.T, limiter LoginLimiter, users map[string]*domain.User) *AuthService {
	t.Helper()
	cfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 30, BcryptCost: bcrypt.MinCost}
	return NewAuthService(cfg, &fakeUserLookup{users: users}, limiter)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func TestAuthService_LoginSuccess(t *testing.T) {
	limiter := &fakeLimiter{}
	svc := newAuthService(t, limiter, map[string]*domain.User{
		"a@test.com": {ID: 1, Email: "a@test.com", PasswordHash: hashFor(t, "secret")},
	})

	token, _, err := svc.Login(context.Background(), "A@Test.com ", "secret")
	require.NoError(t, err)

	subject, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "a@test.com", subject)
	require.Equal(t, 1, limiter.resets)
	require.Zero(t, limiter.failures)
}

func TestAuthService_WrongPassword(t *testing.T) {
	limiter := &fakeLimiter{}
	svc := newAuthService(t, limiter, map[string]*domain.User{
		"a@test.com": {ID: 1, Email: "a@test.com", PasswordHash: hashFor(t, "secret")},
	})

	_, _, err := svc.Login(context.Background(), "a@test.com", "wrong")
	require.Error(t, err)
	require.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(err).Code)
	require.Equal(t, 1, limiter.failures)
}

func TestAuthService_UnknownUserSameError(t *testing.T) {
	limiter := &fakeLimiter{}
	svc := newAuthService(t, limiter, map[string]*domain.User{
		"a@test.com": {ID: 1, Email: "a@test.com", PasswordHash: hashFor(t, "secret")},
	})

	_, _, wrongPass := svc.Login(context.Background(), "a@test.com", "wrong")
	_, _, unknown := svc.Login(context.Background(), "nobody@test.com", "secret")

	require.Error(t, wrongPass)
	require.Error(t, unknown)
	require.Equal(t, wrongPass.Error(), unknown.Error())
	require.Equal(t, 2, limiter.failures)
}

func TestAuthService_Throttled(t *testing.T) {
	limiter := &fakeLimiter{blocked: true}
	svc := newAuthService(t, limiter, map[string]*domain.User{
		"a@test.com": {ID: 1, Email: "a@test.com", PasswordHash: hashFor(t, "secret")},
	})

	_, _, err := svc.Login(context.Background(), "a@test.com", "secret")
	require.Error(t, err)
	require.Equal(t, "RATE_LIMITED", apperrors.ToDomainError(err).Code)
}
