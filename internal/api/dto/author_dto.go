package dto

import "github.com/spec-kit/book-registry/internal/domain"

// AuthorRequest payload for author create/update.
type AuthorRequest struct {
	Name string `json:"name"`
}

// AuthorResponse is the public view of an author.
type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewAuthorResponse maps a domain author.
func NewAuthorResponse(author *domain.Author) AuthorResponse {
	return AuthorResponse{ID: author.ID, Name: author.Name}
}
