package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/book-registry/internal/domain"
	"github.com/spec-kit/book-registry/internal/events"
	"github.com/spec-kit/book-registry/internal/repository"
	apperrors "github.com/spec-kit/book-registry/pkg/util"
)

func knownAuthors(ids ...int64) *fakeAuthorRepo {
	byID := make(map[int64]*domain.Author, len(ids))
	for _, id := range ids {
		byID[id] = &domain.Author{ID: id, Name: "test author"}
	}
	return &fakeAuthorRepo{byID: byID}
}

func TestBookService_Create(t *testing.T) {
	books := &fakeBookRepo{}
	dispatcher := &fakeDispatcher{}
	svc := NewBookService(books, knownAuthors(1), dispatcher)

	book, err := svc.Create(context.Background(), "The  Hobbit", 1937, 1)
	require.NoError(t, err)
	require.Equal(t, "the hobbit", book.Title)
	require.Equal(t, 1937, book.Year)
	require.Len(t, dispatcher.eventsOfType(events.EventBookCreated), 1)
}

func TestBookService_CreateUnknownAuthor(t *testing.T) {
	books := &fakeBookRepo{}
	svc := NewBookService(books, knownAuthors(), &fakeDispatcher{})

	_, err := svc.Create(context.Background(), "test book", 1995, 10)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "NOT_FOUND", domainErr.Code)
	require.Equal(t, "author not found", domainErr.Message)
	require.Empty(t, books.created)
}

func TestBookService_CreateDuplicate(t *testing.T) {
	books := &fakeBookRepo{createErr: uniqueViolation()}
	svc := NewBookService(books, knownAuthors(1), &fakeDispatcher{})

	_, err := svc.Create(context.Background(), "test book", 1995, 1)
	require.Error(t, err)
	require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestBookService_PartialUpdate(t *testing.T) {
	books := &fakeBookRepo{byID: map[int64]*domain.Book{
		1: {ID: 1, Title: "the hobbit", Year: 1937, AuthorID: 1},
	}}
	svc := NewBookService(books, knownAuthors(1), &fakeDispatcher{})

	title := "The Silmarillion"
	book, err := svc.Update(context.Background(), 1, BookUpdateInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "the silmarillion", book.Title)
	require.Equal(t, 1937, book.Year)
	require.Equal(t, int64(1), book.AuthorID)
}

func TestBookService_UpdateToUnknownAuthor(t *testing.T) {
	books := &fakeBookRepo{byID: map[int64]*domain.Book{
		1: {ID: 1, Title: "the hobbit", Year: 1937, AuthorID: 1},
	}}
	svc := NewBookService(books, knownAuthors(1), &fakeDispatcher{})

	authorID := int64(9)
	_, err := svc.Update(context.Background(), 1, BookUpdateInput{AuthorID: &authorID})
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
	require.Empty(t, books.updated)
}

func TestBookService_UpdateNotFound(t *testing.T) {
	svc := NewBookService(&fakeBookRepo{}, knownAuthors(1), &fakeDispatcher{})

	year := 1995
	_, err := svc.Update(context.Background(), 10, BookUpdateInput{Year: &year})
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestBookService_ListSanitizesFilter(t *testing.T) {
	books := &fakeBookRepo{}
	svc := NewBookService(books, knownAuthors(1), &fakeDispatcher{})

	year := 1869
	_, err := svc.List(context.Background(), repository.BookFilter{Title: "Python  Book", Year: &year})
	require.NoError(t, err)
	require.Equal(t, "python book", books.lastFilter.Title)
	require.Equal(t, &year, books.lastFilter.Year)
	require.Equal(t, 20, books.lastFilter.Limit)
}

func TestBookService_DeleteNotFound(t *testing.T) {
	books := &fakeBookRepo{deleteErr: errNoRows()}
	svc := NewBookService(books, knownAuthors(1), &fakeDispatcher{})

	err := svc.Delete(context.Background(), 10)
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
