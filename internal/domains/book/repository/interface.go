package repository

import (
	"context"

	"bookstore-catalog/internal/domains/book/model"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, book *model.Book) (*model.Book, error)

	// List returns all books ordered by title ascending. No pagination,
	// filtering or sorting parameters exist on this surface.
	List(ctx context.Context) ([]model.Book, error)

	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// Replace overwrites every mutable column of the row matching book.ID
	// with book's values. free_shipping and publish_date are not mutable.
	// Returns ErrBookNotFound when no row matches.
	Replace(ctx context.Context, book *model.Book) (*model.Book, error)

	// Delete hard-deletes the row and returns it as it was.
	Delete(ctx context.Context, id uuid.UUID) (*model.Book, error)
}
