package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/book-registry/internal/domain"
	"github.com/spec-kit/book-registry/internal/events"
	"github.com/spec-kit/book-registry/internal/repository"
	apperrors "github.com/spec-kit/book-registry/pkg/util"
)

// AuthorService manages the author catalog.
type AuthorService struct {
	authors    repository.AuthorRepository
	dispatcher events.Dispatcher
}

// NewAuthorService builds the service.
func NewAuthorService(authors repository.AuthorRepository, dispatcher events.Dispatcher) *AuthorService {
	return &AuthorService{authors: authors, dispatcher: dispatcher}
}

// Create registers an author under its sanitized name.
func (s *AuthorService) Create(ctx context.Context, name string) (*domain.Author, error) {
	name = sanitizeName(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}

	author := &domain.Author{Name: name}
	if err := s.authors.Create(ctx, author); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("author already registered", nil)
		}
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAuthorCreated,
			Timestamp: time.Now(),
			Payload:   events.AuthorCreatedPayload{AuthorID: author.ID, Name: author.Name},
		})
	}
	return author, nil
}

// List returns authors filtered by name substring.
func (s *AuthorService) List(ctx context.Context, filter repository.AuthorFilter) ([]domain.Author, error) {
	filter.Name = sanitizeName(filter.Name)
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.authors.List(ctx, filter)
}

// Get returns a single author.
func (s *AuthorService) Get(ctx context.Context, id int64) (*domain.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("author", nil)
		}
		return nil, err
	}
	return author, nil
}

// Update renames an author.
func (s *AuthorService) Update(ctx context.Context, id int64, name string) (*domain.Author, error) {
	author, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name = sanitizeName(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}

	author.Name = name
	if err := s.authors.Update(ctx, author); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("author already registered", nil)
		}
		return nil, err
	}
	author.UpdatedAt = time.Now()
	return author, nil
}

// Delete removes an author and, through the schema, their books.
func (s *AuthorService) Delete(ctx context.Context, id int64) error {
	if err := s.authors.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("author", nil)
		}
		return err
	}
	return nil
}
