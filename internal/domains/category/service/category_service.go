package service

import (
	"context"
	"time"

	"bookstore-catalog/internal/domains/category/model"
	"bookstore-catalog/internal/domains/category/repository"

	"github.com/google/uuid"
)

type categoryService struct {
	repo repository.Repository
}

func NewCategoryService(repo repository.Repository) Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	now := time.Now()
	return s.repo.Create(ctx, &model.Category{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

// Rename updates the live category only. Snapshots embedded in existing
// books keep the old name on purpose.
func (s *categoryService) Rename(ctx context.Context, id uuid.UUID, req model.CategoryRequest) (*model.Category, error) {
	return s.repo.UpdateName(ctx, id, req.Name)
}
