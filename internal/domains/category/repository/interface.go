package repository

import (
	"context"

	"bookstore-catalog/internal/domains/category/model"

	"github.com/google/uuid"
)

// Repository is the category data access contract. The book domain consumes
// only GetByID, read-only, to snapshot {id, name}.
type Repository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*model.Category, error)
}
