package repository

import (
	"context"
	"errors"
	"fmt"

	"bookstore-catalog/internal/domains/user/model"
	"bookstore-catalog/pkg/logger"

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

func (r *postgresRepository) Create(ctx context.Context, entity *model.User) (*model.User, error) {
	const query = `
		INSERT INTO users (id, full_name, email, password_hash, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, full_name, email, password_hash, version, created_at
	`

	created := &model.User{}
	err := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Name, entity.Email, entity.PasswordHash, entity.Version, entity.CreatedAt,
	).Scan(&created.ID, &created.Name, &created.Email, &created.PasswordHash, &created.Version, &created.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "idx_users_email" {
			return nil, model.ErrEmailTaken
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `
		SELECT id, full_name, email, password_hash, version, created_at
		FROM users
		WHERE email = $1
	`

	entity := &model.User{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&entity.ID, &entity.Name, &entity.Email, &entity.PasswordHash, &entity.Version, &entity.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		logger.Error("GetByEmail: database error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return entity, nil
}
