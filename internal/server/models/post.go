package models

import "time"

// Post is a single published message. Posts are append-only: they are never
// edited or deleted. CreatedAt plus ID gives a stable total order.
type Post struct {
	ID        int64
	AuthorID  int64
	Text      string
	CreatedAt time.Time
}
