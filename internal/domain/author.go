package domain

import "time"

// Author represents a registered author. Names are stored in their
// sanitized form (trimmed, lowercased, single-spaced).
type Author struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
