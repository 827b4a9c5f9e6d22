package repository

import (
	"context"

	"bookstore-catalog/internal/domains/review/model"

	"github.com/google/uuid"
)

// Repository is the read-side contract the book domain consumes to expand
// review user references.
type Repository interface {
	// ListForBook returns a book's reviews in insertion order.
	ListForBook(ctx context.Context, bookID uuid.UUID) ([]model.Review, error)

	// ListForBooks batch-loads reviews for many books in one query,
	// keyed by book id. Books without reviews are absent from the map.
	ListForBooks(ctx context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]model.Review, error)
}
