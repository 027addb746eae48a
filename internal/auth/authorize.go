package auth

import (
	"github.com/spec-kit/book-registry/internal/domain"
	apperrors "github.com/spec-kit/book-registry/pkg/util"
)

// AuthorizeOwner allows a mutation only when the acting account owns the
// target resource. Runs after authentication, before any store write.
func AuthorizeOwner(actor *domain.User, ownerID int64) error {
	if actor == nil {
		return apperrors.NewUnauthenticated()
	}
	if actor.ID != ownerID {
		return apperrors.NewForbidden("not enough permission")
	}
	return nil
}
