package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/book-registry/internal/auth"
	"github.com/spec-kit/book-registry/internal/domain"
	"github.com/spec-kit/book-registry/internal/events"
	"github.com/spec-kit/book-registry/internal/repository"
	apperrors "github.com/spec-kit/book-registry/pkg/util"
)

// AccountInput carries account create/update fields.
type AccountInput struct {
	Username string
	Email    string
	Password string
}

// AccountService manages the user account lifecycle.
type AccountService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(users repository.UserRepository, dispatcher events.Dispatcher, bcryptCost int) *AccountService {
	return &AccountService{users: users, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// Register creates a new account. Username and email collisions are
// reported as a conflict by the unique constraints.
func (s *AccountService) Register(ctx context.Context, input AccountInput) (*domain.User, error) {
	username, email, err := normalizeAccountInput(input)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("account already registered", nil)
		}
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, &user.ID, events.UserRegisteredPayload{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	return user, nil
}

// Get returns a single account by id.
func (s *AccountService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// List returns accounts with offset/limit pagination.
func (s *AccountService) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.users.List(ctx, offset, limit)
}

// Update replaces an account's fields. Only the owner may update.
func (s *AccountService) Update(ctx context.Context, actor *domain.User, id int64, input AccountInput) (*domain.User, error) {
	if err := auth.AuthorizeOwner(actor, id); err != nil {
		return nil, err
	}

	username, email, err := normalizeAccountInput(input)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("account already registered", nil)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	user.UpdatedAt = time.Now()
	return user, nil
}

// Delete removes an account. Only the owner may delete.
func (s *AccountService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if err := auth.AuthorizeOwner(actor, id); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}

	s.publish(ctx, events.EventUserDeleted, &id, events.UserDeletedPayload{UserID: id})
	return nil
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, actorID *int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func normalizeAccountInput(input AccountInput) (username, email string, err error) {
	username = strings.TrimSpace(input.Username)
	email = strings.ToLower(strings.TrimSpace(input.Email))

	if username == "" || email == "" || input.Password == "" {
		return "", "", apperrors.NewValidationError("username, email, password required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", "", apperrors.NewValidationError("invalid email address", nil)
	}
	return username, email, nil
}
