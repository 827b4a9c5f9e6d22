package repository

import (
	"context"
	"fmt"

	"bookstore-catalog/internal/domains/review/model"
	"bookstore-catalog/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// Column list deliberately excludes users.password_hash and users.version.
const selectReviews = `
	SELECT
		r.id, r.book_id, r.rating, r.review_text, r.created_at,
		u.id, u.full_name, u.email
	FROM book_reviews r
	JOIN users u ON u.id = r.user_id
`

func (r *postgresRepository) ListForBook(ctx context.Context, bookID uuid.UUID) ([]model.Review, error) {
	const query = selectReviews + `
		WHERE r.book_id = $1
		ORDER BY r.created_at, r.id
	`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		logger.Error("ListForBook: database error", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(
			&rv.ID, &rv.BookID, &rv.Rating, &rv.Text, &rv.CreatedAt,
			&rv.User.ID, &rv.User.Name, &rv.User.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}

func (r *postgresRepository) ListForBooks(ctx context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]model.Review, error) {
	if len(bookIDs) == 0 {
		return map[uuid.UUID][]model.Review{}, nil
	}

	const query = selectReviews + `
		WHERE r.book_id = ANY($1)
		ORDER BY r.book_id, r.created_at, r.id
	`

	rows, err := r.pool.Query(ctx, query, bookIDs)
	if err != nil {
		logger.Error("ListForBooks: database error", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	byBook := make(map[uuid.UUID][]model.Review)
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(
			&rv.ID, &rv.BookID, &rv.Rating, &rv.Text, &rv.CreatedAt,
			&rv.User.ID, &rv.User.Name, &rv.User.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		byBook[rv.BookID] = append(byBook[rv.BookID], rv)
	}

	return byBook, rows.Err()
}
