package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"bookstore-catalog/internal/domains/book/model"
	categorymodel "bookstore-catalog/internal/domains/category/model"
	reviewmodel "bookstore-catalog/internal/domains/review/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- in-memory fakes ----

type fakeBookRepo struct {
	books map[uuid.UUID]model.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[uuid.UUID]model.Book{}}
}

func (f *fakeBookRepo) Create(_ context.Context, book *model.Book) (*model.Book, error) {
	f.books[book.ID] = *book
	stored := f.books[book.ID]
	return &stored, nil
}

func (f *fakeBookRepo) List(_ context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0, len(f.books))
	for _, b := range f.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return &b, nil
}

// Replace mirrors the SQL UPDATE: every mutable column is overwritten,
// free_shipping, publish_date and created_at are left alone.
func (f *fakeBookRepo) Replace(_ context.Context, book *model.Book) (*model.Book, error) {
	existing, ok := f.books[book.ID]
	if !ok {
		return nil, model.ErrBookNotFound
	}

	updated := *book
	updated.FreeShipping = existing.FreeShipping
	updated.PublishDate = existing.PublishDate
	updated.CreatedAt = existing.CreatedAt
	f.books[book.ID] = updated

	stored := f.books[book.ID]
	return &stored, nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id uuid.UUID) (*model.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	delete(f.books, id)
	return &b, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]categorymodel.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uuid.UUID]categorymodel.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *categorymodel.Category) (*categorymodel.Category, error) {
	f.categories[c.ID] = *c
	stored := f.categories[c.ID]
	return &stored, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*categorymodel.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, categorymodel.ErrCategoryNotFound
	}
	return &c, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]categorymodel.Category, error) {
	out := make([]categorymodel.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) UpdateName(_ context.Context, id uuid.UUID, name string) (*categorymodel.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, categorymodel.ErrCategoryNotFound
	}
	c.Name = name
	f.categories[id] = c
	return &c, nil
}

type fakeReviewRepo struct {
	byBook map[uuid.UUID][]reviewmodel.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{byBook: map[uuid.UUID][]reviewmodel.Review{}}
}

func (f *fakeReviewRepo) ListForBook(_ context.Context, bookID uuid.UUID) ([]reviewmodel.Review, error) {
	reviews := f.byBook[bookID]
	if reviews == nil {
		reviews = []reviewmodel.Review{}
	}
	return reviews, nil
}

func (f *fakeReviewRepo) ListForBooks(_ context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]reviewmodel.Review, error) {
	out := map[uuid.UUID][]reviewmodel.Review{}
	for _, id := range bookIDs {
		if reviews, ok := f.byBook[id]; ok {
			out[id] = reviews
		}
	}
	return out, nil
}

// ---- helpers ----

type fixture struct {
	service    Service
	books      *fakeBookRepo
	categories *fakeCategoryRepo
	reviews    *fakeReviewRepo
	categoryID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	books := newFakeBookRepo()
	categories := newFakeCategoryRepo()
	reviews := newFakeReviewRepo()

	categoryID := uuid.New()
	categories.categories[categoryID] = categorymodel.Category{
		ID:        categoryID,
		Name:      "Software",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return &fixture{
		service:    NewBookService(books, categories, reviews),
		books:      books,
		categories: categories,
		reviews:    reviews,
		categoryID: categoryID,
	}
}

func intPtr(v int) *int { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func validRequest(categoryID uuid.UUID) model.BookRequest {
	return model.BookRequest{
		Title:         "Clean Code",
		Image:         "x.png",
		CategoryID:    categoryID.String(),
		Price:         decPtr(20),
		Author:        "R. Martin Jr.",
		Description:   "AAAAAAAAAA",
		Page:          intPtr(100),
		Format:        "Paperback",
		Publisher:     "Prentice Hall",
		NumberInStock: intPtr(60),
	}
}

// ---- tests ----

func TestCreate_EmbedsSnapshotAndDerivesFields(t *testing.T) {
	f := newFixture(t)

	book, err := f.service.Create(context.Background(), validRequest(f.categoryID))
	require.NoError(t, err)

	assert.Equal(t, f.categoryID, book.Category.ID)
	assert.Equal(t, "Software", book.Category.Name)
	assert.True(t, book.FreeShipping, "60 in stock earns free shipping")
	assert.True(t, book.Rating.IsZero(), "rating defaults to 0")
	assert.Empty(t, book.Reviews)
	assert.False(t, book.PublishDate.IsZero(), "publishDate defaults to creation time")
}

func TestCreate_FreeShippingThreshold(t *testing.T) {
	f := newFixture(t)

	req := validRequest(f.categoryID)
	req.NumberInStock = intPtr(49)

	book, err := f.service.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, book.FreeShipping)

	req.NumberInStock = intPtr(50)
	book, err = f.service.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, book.FreeShipping)
}

func TestCreate_SnapshotSurvivesCategoryRename(t *testing.T) {
	f := newFixture(t)

	book, err := f.service.Create(context.Background(), validRequest(f.categoryID))
	require.NoError(t, err)

	_, err = f.categories.UpdateName(context.Background(), f.categoryID, "Programming")
	require.NoError(t, err)

	got, err := f.service.GetByID(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Software", got.Category.Name, "snapshot must keep the name as of creation time")
}

func TestCreate_UnknownCategory(t *testing.T) {
	f := newFixture(t)

	req := validRequest(uuid.New())
	_, err := f.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrInvalidCategory)
	assert.Empty(t, f.books.books, "nothing persisted")
}

func TestCreate_MissingCategoryID(t *testing.T) {
	f := newFixture(t)

	req := validRequest(f.categoryID)
	req.CategoryID = ""

	_, err := f.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrInvalidCategory)
}

func TestCreate_StorageValidationStopsPersistence(t *testing.T) {
	f := newFixture(t)

	// Passes the input validator (max 1000) but violates storage (max 255).
	req := validRequest(f.categoryID)
	req.Price = decPtr(500)
	require.NoError(t, req.Validate())

	_, err := f.service.Create(context.Background(), req)
	var storageErr *model.StorageValidationError
	require.ErrorAs(t, err, &storageErr)
	assert.Empty(t, f.books.books, "violating document never reaches the repository")
}

func TestReplace_WholesaleOverwrite(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.Create(context.Background(), validRequest(f.categoryID))
	require.NoError(t, err)
	require.True(t, created.FreeShipping)

	req := validRequest(f.categoryID)
	req.Title = "The Pragmatic Programmer"
	req.Subtitle = nil // omitted fields are not preserved
	req.NumberInStock = intPtr(3)
	req.Rating = decPtr(4)

	updated, err := f.service.Replace(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, "The Pragmatic Programmer", updated.Title)
	assert.Nil(t, updated.Subtitle)
	assert.Equal(t, 3, updated.NumberInStock)
	assert.True(t, updated.Rating.Equal(decimal.NewFromInt(4)))
	assert.True(t, updated.FreeShipping, "freeShipping is never recomputed on update")
	assert.Equal(t, created.PublishDate.Unix(), updated.PublishDate.Unix(), "publishDate is never touched on update")
}

func TestReplace_ReEmbedsCategorySnapshot(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.Create(context.Background(), validRequest(f.categoryID))
	require.NoError(t, err)

	_, err = f.categories.UpdateName(context.Background(), f.categoryID, "Programming")
	require.NoError(t, err)

	updated, err := f.service.Replace(context.Background(), created.ID, validRequest(f.categoryID))
	require.NoError(t, err)
	assert.Equal(t, "Programming", updated.Category.Name, "update re-resolves and re-embeds the category")
}

func TestReplace_UnknownCategoryLeavesBookUnchanged(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.Create(context.Background(), validRequest(f.categoryID))
	require.NoError(t, err)

	req := validRequest(uuid.New())
	req.Title = "Should Not Stick"

	_, err = f.service.Replace(context.Background(), created.ID, req)
	assert.ErrorIs(t, err, model.ErrInvalidCategory)

	got, err := f.service.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clean Code", got.Title)
}

func TestReplace_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Replace(context.Background(), uuid.New(), validRequest(f.categoryID))
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestList_SortedByTitleWithReviews(t *testing.T) {
	f := newFixture(t)

	for _, title := range []string{"Zero to One", "Clean Code", "Mythical Man-Month"} {
		req := validRequest(f.categoryID)
		req.Title = title
		_, err := f.service.Create(context.Background(), req)
		require.NoError(t, err)
	}

	books, err := f.service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 3)

	assert.Equal(t, "Clean Code", books[0].Title)
	assert.Equal(t, "Mythical Man-Month", books[1].Title)
	assert.Equal(t, "Zero to One", books[2].Title)
	for _, b := range books {
		assert.NotNil(t, b.Reviews, "reviews always serialize as a list")
	}
}

func TestGetByID_PopulatesReviews(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.Create(context.Background(), validRequest(f.categoryID))
	require.NoError(t, err)

	f.reviews.byBook[created.ID] = []reviewmodel.Review{
		{
			ID:     uuid.New(),
			BookID: created.ID,
			Rating: 5,
			Text:   "A must read.",
			User:   reviewmodel.ReviewUser{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"},
		},
	}

	got, err := f.service.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, "Alice", got.Reviews[0].User.Name)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestDelete_ReturnsSnapshotAndRemoves(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.Create(context.Background(), validRequest(f.categoryID))
	require.NoError(t, err)

	deleted, err := f.service.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = f.service.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
