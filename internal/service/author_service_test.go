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

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"William Shakespeare": "william shakespeare",
		"  Paulo   Coelho  ":  "paulo coelho",
		"MACHADO\tDE\nASSIS":  "machado de assis",
		"":                    "",
		"   ":                 "",
	}
	for input, want := range cases {
		require.Equal(t, want, sanitizeName(input))
	}
}

func TestAuthorService_CreateSanitizes(t *testing.T) {
	repo := &fakeAuthorRepo{}
	dispatcher := &fakeDispatcher{}
	svc := NewAuthorService(repo, dispatcher)

	author, err := svc.Create(context.Background(), "William  Shakespeare")
	require.NoError(t, err)
	require.Equal(t, "william shakespeare", author.Name)
	require.Len(t, dispatcher.eventsOfType(events.EventAuthorCreated), 1)
}

func TestAuthorService_CreateDuplicate(t *testing.T) {
	repo := &fakeAuthorRepo{createErr: uniqueViolation()}
	svc := NewAuthorService(repo, &fakeDispatcher{})

	_, err := svc.Create(context.Background(), "william shakespeare")
	require.Error(t, err)
	require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestAuthorService_CreateEmptyName(t *testing.T) {
	svc := NewAuthorService(&fakeAuthorRepo{}, &fakeDispatcher{})

	_, err := svc.Create(context.Background(), "   ")
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestAuthorService_ListSanitizesFilter(t *testing.T) {
	repo := &fakeAuthorRepo{}
	svc := NewAuthorService(repo, &fakeDispatcher{})

	_, err := svc.List(context.Background(), repository.AuthorFilter{Name: "William Shakespeare"})
	require.NoError(t, err)
	require.Equal(t, "william shakespeare", repo.lastFilter.Name)
	require.Equal(t, 20, repo.lastFilter.Limit)
}

func TestAuthorService_UpdateNotFound(t *testing.T) {
	svc := NewAuthorService(&fakeAuthorRepo{}, &fakeDispatcher{})

	_, err := svc.Update(context.Background(), 10, "test author")
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestAuthorService_Update(t *testing.T) {
	repo := &fakeAuthorRepo{byID: map[int64]*domain.Author{
		1: {ID: 1, Name: "paulo coelho"},
	}}
	svc := NewAuthorService(repo, &fakeDispatcher{})

	author, err := svc.Update(context.Background(), 1, "William Shakespeare")
	require.NoError(t, err)
	require.Equal(t, "william shakespeare", author.Name)
	require.Len(t, repo.updated, 1)
}

func TestAuthorService_DeleteNotFound(t *testing.T) {
	repo := &fakeAuthorRepo{deleteErr: errNoRows()}
	svc := NewAuthorService(repo, &fakeDispatcher{})

	err := svc.Delete(context.Background(), 10)
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
