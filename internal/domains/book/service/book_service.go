package service

import (
	"context"
	"errors"
	"time"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/repository"
	categorymodel "bookstore-catalog/internal/domains/category/model"
	categoryrepo "bookstore-catalog/internal/domains/category/repository"
	reviewmodel "bookstore-catalog/internal/domains/review/model"
	reviewrepo "bookstore-catalog/internal/domains/review/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock at or above this at creation time earns free shipping, permanently.
const freeShippingStock = 50

type bookService struct {
	books      repository.Repository
	categories categoryrepo.Repository
	reviews    reviewrepo.Repository
}

func NewBookService(
	books repository.Repository,
	categories categoryrepo.Repository,
	reviews reviewrepo.Repository,
) Service {
	return &bookService{
		books:      books,
		categories: categories,
		reviews:    reviews,
	}
}

func (s *bookService) List(ctx context.Context) ([]model.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(books))
	for i := range books {
		ids[i] = books[i].ID
	}

	byBook, err := s.reviews.ListForBooks(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range books {
		books[i].Reviews = byBook[books[i].ID]
		if books[i].Reviews == nil {
			books[i].Reviews = []reviewmodel.Review{}
		}
	}

	return books, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListForBook(ctx, id)
	if err != nil {
		return nil, err
	}
	book.Reviews = reviews

	return book, nil
}

func (s *bookService) Create(ctx context.Context, req model.BookRequest) (*model.Book, error) {
	category, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	book := &model.Book{
		ID:          uuid.New(),
		PublishDate: now,
		// Derived once, never recomputed on update.
		FreeShipping: *req.NumberInStock >= freeShippingStock,
		Reviews:      []reviewmodel.Review{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyRequest(book, req, category)

	if err := book.Validate(); err != nil {
		return nil, err
	}

	created, err := s.books.Create(ctx, book)
	if err != nil {
		return nil, err
	}
	created.Reviews = []reviewmodel.Review{}

	return created, nil
}

// Replace re-resolves the category and overwrites the whole document.
// Fields omitted from the request are not preserved; freeShipping and
// publishDate are never part of the replacement.
func (s *bookService) Replace(ctx context.Context, id uuid.UUID, req model.BookRequest) (*model.Book, error) {
	category, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	book := &model.Book{
		ID:        id,
		UpdatedAt: time.Now(),
	}
	applyRequest(book, req, category)

	if err := book.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.books.Replace(ctx, book)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListForBook(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.Reviews = reviews

	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	// Load the full snapshot (reviews included) before the row goes away;
	// review rows cascade with the book.
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.books.Delete(ctx, id); err != nil {
		return nil, err
	}

	return book, nil
}

// resolveCategory looks the reference up at write time. An absent or
// unparseable id fails the same way a missing record does: the caller sees
// "Invalid category." either way, matching the original surface.
func (s *bookService) resolveCategory(ctx context.Context, categoryID string) (*categorymodel.Category, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, model.ErrInvalidCategory
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, categorymodel.ErrCategoryNotFound) {
			return nil, model.ErrInvalidCategory
		}
		return nil, err
	}

	return category, nil
}

// applyRequest copies every validated scalar field plus the category
// snapshot onto the book. Shared by create and replace so the "wholesale"
// field set stays in one place.
func applyRequest(book *model.Book, req model.BookRequest, category *categorymodel.Category) {
	book.Title = req.Title
	book.Subtitle = req.Subtitle
	book.Edition = req.Edition
	book.Image = req.Image
	book.Category = model.CategorySnapshot{
		ID:   category.ID,
		Name: category.Name,
	}
	book.Price = *req.Price
	book.Author = req.Author
	book.Description = req.Description
	book.Page = *req.Page
	book.Format = req.Format
	book.Publisher = req.Publisher
	book.NumberInStock = *req.NumberInStock
	book.AddToCart = req.AddToCart
	book.DiscountPrice = req.DiscountPrice

	book.Rating = decimal.Zero
	if req.Rating != nil {
		book.Rating = *req.Rating
	}
}
