package dto

import "github.com/spec-kit/book-registry/internal/domain"

// BookCreateRequest payload for new books.
type BookCreateRequest struct {
	Title    string `json:"title"`
	Year     int    `json:"year"`
	AuthorID int64  `json:"author_id"`
}

// BookUpdateRequest payload for partial book updates.
type BookUpdateRequest struct {
	Title    *string `json:"title"`
	Year     *int    `json:"year"`
	AuthorID *int64  `json:"author_id"`
}

// BookResponse is the public view of a book.
type BookResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	AuthorID int64  `json:"author_id"`
}

// NewBookResponse maps a domain book.
func NewBookResponse(book *domain.Book) BookResponse {
	return BookResponse{ID: book.ID, Title: book.Title, Year: book.Year, AuthorID: book.AuthorID}
}
