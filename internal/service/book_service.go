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

// BookUpdateInput carries optional book fields for partial updates.
type BookUpdateInput struct {
	Title    *string
	Year     *int
	AuthorID *int64
}

// BookService manages the book catalog.
type BookService struct {
	books      repository.BookRepository
	authors    repository.AuthorRepository
	dispatcher events.Dispatcher
}

// NewBookService builds the service.
func NewBookService(books repository.BookRepository, authors repository.AuthorRepository, dispatcher events.Dispatcher) *BookService {
	return &BookService{books: books, authors: authors, dispatcher: dispatcher}
}

// Create registers a book. The referenced author must exist.
func (s *BookService) Create(ctx context.Context, title string, year int, authorID int64) (*domain.Book, error) {
	title = sanitizeName(title)
	if title == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}

	if err := s.ensureAuthorExists(ctx, authorID); err != nil {
		return nil, err
	}

	book := &domain.Book{Title: title, Year: year, AuthorID: authorID}
	if err := s.books.Create(ctx, book); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("book already registered", nil)
		}
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBookCreated,
			Timestamp: time.Now(),
			Payload: events.BookCreatedPayload{
				BookID:   book.ID,
				Title:    book.Title,
				Year:     book.Year,
				AuthorID: book.AuthorID,
			},
		})
	}
	return book, nil
}

// List returns books filtered by title substring and year.
func (s *BookService) List(ctx context.Context, filter repository.BookFilter) ([]domain.Book, error) {
	filter.Title = sanitizeName(filter.Title)
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.books.List(ctx, filter)
}

// Get returns a single book.
func (s *BookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("book", nil)
		}
		return nil, err
	}
	return book, nil
}

// Update applies the fields set in input to an existing book.
func (s *BookService) Update(ctx context.Context, id int64, input BookUpdateInput) (*domain.Book, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := sanitizeName(*input.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title required", nil)
		}
		book.Title = title
	}
	if input.Year != nil {
		book.Year = *input.Year
	}
	if input.AuthorID != nil && *input.AuthorID != book.AuthorID {
		if err := s.ensureAuthorExists(ctx, *input.AuthorID); err != nil {
			return nil, err
		}
		book.AuthorID = *input.AuthorID
	}

	if err := s.books.Update(ctx, book); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("book already registered", nil)
		}
		return nil, err
	}
	book.UpdatedAt = time.Now()
	return book, nil
}

// Delete removes a book.
func (s *BookService) Delete(ctx context.Context, id int64) error {
	if err := s.books.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("book", nil)
		}
		return err
	}
	return nil
}

func (s *BookService) ensureAuthorExists(ctx context.Context, authorID int64) error {
	if _, err := s.authors.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("author", nil)
		}
		return err
	}
	return nil
}
