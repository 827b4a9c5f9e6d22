package repository

import (
	"context"

	"bookstore-catalog/internal/domains/user/model"
)

type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
