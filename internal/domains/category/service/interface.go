package service

import (
	"context"

	"bookstore-catalog/internal/domains/category/model"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req model.CategoryRequest) (*model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Rename(ctx context.Context, id uuid.UUID, req model.CategoryRequest) (*model.Category, error)
}
