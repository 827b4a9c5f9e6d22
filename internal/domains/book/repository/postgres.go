package repository

import (
	"context"
	"errors"
	"fmt"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `
	id, title, subtitle, edition, image,
	category_id, category_name,
	price, discount_price, rating,
	author, description, page, format, publisher,
	publish_date, number_in_stock, add_to_cart, free_shipping,
	created_at, updated_at
`

func scanBook(row pgx.Row) (*model.Book, error) {
	b := &model.Book{}
	err := row.Scan(
		&b.ID, &b.Title, &b.Subtitle, &b.Edition, &b.Image,
		&b.Category.ID, &b.Category.Name,
		&b.Price, &b.DiscountPrice, &b.Rating,
		&b.Author, &b.Description, &b.Page, &b.Format, &b.Publisher,
		&b.PublishDate, &b.NumberInStock, &b.AddToCart, &b.FreeShipping,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	const query = `
		INSERT INTO books (` + bookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING ` + bookColumns

	row := r.pool.QueryRow(ctx, query,
		book.ID, book.Title, book.Subtitle, book.Edition, book.Image,
		book.Category.ID, book.Category.Name,
		book.Price, book.DiscountPrice, book.Rating,
		book.Author, book.Description, book.Page, book.Format, book.Publisher,
		book.PublishDate, book.NumberInStock, book.AddToCart, book.FreeShipping,
		book.CreatedAt, book.UpdatedAt,
	)

	created, err := scanBook(row)
	if err != nil {
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	const query = `
		SELECT ` + bookColumns + `
		FROM books
		ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List: database error", err)
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	return books, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	const query = `
		SELECT ` + bookColumns + `
		FROM books
		WHERE id = $1
	`

	book, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return book, nil
}

// Replace is a wholesale overwrite with last-write-wins semantics: there is
// no version check, so concurrent replaces of the same id silently race.
func (r *postgresRepository) Replace(ctx context.Context, book *model.Book) (*model.Book, error) {
	const query = `
		UPDATE books SET
			title = $2, subtitle = $3, edition = $4, image = $5,
			category_id = $6, category_name = $7,
			price = $8, discount_price = $9, rating = $10,
			author = $11, description = $12, page = $13, format = $14, publisher = $15,
			number_in_stock = $16, add_to_cart = $17,
			updated_at = $18
		WHERE id = $1
		RETURNING ` + bookColumns

	row := r.pool.QueryRow(ctx, query,
		book.ID, book.Title, book.Subtitle, book.Edition, book.Image,
		book.Category.ID, book.Category.Name,
		book.Price, book.DiscountPrice, book.Rating,
		book.Author, book.Description, book.Page, book.Format, book.Publisher,
		book.NumberInStock, book.AddToCart,
		book.UpdatedAt,
	)

	updated, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		logger.Error("Replace: database error", err)
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	const query = `
		DELETE FROM books
		WHERE id = $1
		RETURNING ` + bookColumns

	deleted, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		logger.Error("Delete: database error", err)
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}
	return deleted, nil
}
