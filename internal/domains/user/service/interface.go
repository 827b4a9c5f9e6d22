package service

import (
	"context"

	"bookstore-catalog/internal/domains/user/model"
)

type Service interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
}
