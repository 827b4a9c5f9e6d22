package repository

import (
	"context"
	"errors"
	"fmt"

	"bookstore-catalog/internal/domains/category/model"
	"bookstore-catalog/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *model.Category) (*model.Category, error) {
	const query = `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, created_at, updated_at
	`

	created := &model.Category{}
	err := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Name, entity.CreatedAt, entity.UpdatedAt,
	).Scan(&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "idx_categories_name" {
			return nil, model.ErrDuplicateName
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	entity := &model.Category{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&entity.ID, &entity.Name, &entity.CreatedAt, &entity.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List: database error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *postgresRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*model.Category, error) {
	const query = `
		UPDATE categories
		SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at
	`

	entity := &model.Category{}
	err := r.pool.QueryRow(ctx, query, id, name).Scan(
		&entity.ID, &entity.Name, &entity.CreatedAt, &entity.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		logger.Error("UpdateName: database error", err)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return entity, nil
}
