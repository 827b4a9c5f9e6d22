package service

import (
	"context"

	"bookstore-catalog/internal/domains/book/model"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	Create(ctx context.Context, req model.BookRequest) (*model.Book, error)
	Replace(ctx context.Context, id uuid.UUID, req model.BookRequest) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Book, error)
}
