package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is an embedded sub-document of a book from the catalog's point of
// view: the list is ordered, append-only, and rows go away with the book.
// Its own write lifecycle is owned elsewhere.
type Review struct {
	ID     uuid.UUID `json:"id"`
	BookID uuid.UUID `json:"-"`
	Rating int       `json:"rating"` // 1-5
	Text   string    `json:"text"`

	// User is populated on read. Credential hash and the internal
	// revision column are never selected.
	User ReviewUser `json:"user"`

	CreatedAt time.Time `json:"created_at"`
}

// ReviewUser is the safe projection of a user embedded in review responses.
type ReviewUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
