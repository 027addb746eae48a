package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/book-registry/internal/domain"
	"github.com/spec-kit/book-registry/internal/events"
	"github.com/spec-kit/book-registry/internal/repository"
)

// uniqueViolation mimics the error pgx surfaces for duplicate keys.
func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

func errNoRows() error {
	return pgx.ErrNoRows
}

type fakeUserRepo struct {
	createErr error
	updateErr error
	deleteErr error

	byID map[int64]*domain.User

	created []*domain.User
	updated []*domain.User
	deleted []int64
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = int64(len(f.created) + 1)
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, user)
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	return nil, nil
}

type fakeAuthorRepo struct {
	createErr error
	updateErr error
	deleteErr error

	byID    map[int64]*domain.Author
	listOut []domain.Author

	created    []*domain.Author
	updated    []*domain.Author
	deleted    []int64
	lastFilter repository.AuthorFilter
}

func (f *fakeAuthorRepo) Create(ctx context.Context, author *domain.Author) error {
	if f.createErr != nil {
		return f.createErr
	}
	author.ID = int64(len(f.created) + 1)
	f.created = append(f.created, author)
	return nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, author *domain.Author) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, author)
	return nil
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAuthorRepo) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	if author, ok := f.byID[id]; ok {
		return author, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAuthorRepo) List(ctx context.Context, filter repository.AuthorFilter) ([]domain.Author, error) {
	f.lastFilter = filter
	return f.listOut, nil
}

type fakeBookRepo struct {
	createErr error
	updateErr error
	deleteErr error

	byID    map[int64]*domain.Book
	listOut []domain.Book

	created    []*domain.Book
	updated    []*domain.Book
	deleted    []int64
	lastFilter repository.BookFilter
}

func (f *fakeBookRepo) Create(ctx context.Context, book *domain.Book) error {
	if f.createErr != nil {
		return f.createErr
	}
	book.ID = int64(len(f.created) + 1)
	f.created = append(f.created, book)
	return nil
}

func (f *fakeBookRepo) Update(ctx context.Context, book *domain.Book) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, book)
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	if book, ok := f.byID[id]; ok {
		copied := *book
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeBookRepo) List(ctx context.Context, filter repository.BookFilter) ([]domain.Book, error) {
	f.lastFilter = filter
	return f.listOut, nil
}

type fakeDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (f *fakeDispatcher) Publish(ctx context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, event)
	return nil
}

func (f *fakeDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (f *fakeDispatcher) eventsOfType(eventType events.EventType) []events.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []events.Event
	for _, event := range f.published {
		if event.Type == eventType {
			out = append(out, event)
		}
	}
	return out
}
