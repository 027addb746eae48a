package domain

import "time"

// Book belongs to exactly one author. Titles are stored sanitized,
// matching author names.
type Book struct {
	ID        int64
	Title     string
	Year      int
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
