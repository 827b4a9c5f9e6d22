package model

import (
	"fmt"
	"time"

	reviewmodel "bookstore-catalog/internal/domains/review/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorySnapshot is a value object copied from the live category at the
// moment a book is created or updated. It is stored as plain columns, not a
// foreign key: renaming the category later does not reach books already
// written. That staleness is the documented trade-off for read performance.
type CategorySnapshot struct {
	ID   uuid.UUID `json:"id" db:"category_id"`
	Name string    `json:"name" db:"category_name"`
}

// Book is the catalog root entity.
type Book struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Title    string    `json:"title" db:"title"`
	Subtitle *string   `json:"subtitle,omitempty" db:"subtitle"`
	Edition  *string   `json:"edition,omitempty" db:"edition"`

	// Image stores a reference (URL), never binary.
	Image string `json:"image" db:"image"`

	Category CategorySnapshot `json:"category"`

	// Monetary and rating fields keep exact decimal semantics.
	Price         decimal.Decimal  `json:"price" db:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty" db:"discount_price"`
	Rating        decimal.Decimal  `json:"rating" db:"rating"`

	Author      string `json:"author" db:"author"`
	Description string `json:"description" db:"description"`
	Page        int    `json:"page" db:"page"`
	Format      string `json:"format" db:"format"`
	Publisher   string `json:"publisher" db:"publisher"`

	PublishDate   time.Time `json:"publishDate" db:"publish_date"`
	NumberInStock int       `json:"numberInStock" db:"number_in_stock"`
	AddToCart     bool      `json:"addToCart" db:"add_to_cart"`

	// FreeShipping is derived once at creation (numberInStock >= 50) and is
	// never recomputed or accepted as input afterwards.
	FreeShipping bool `json:"freeShipping" db:"free_shipping"`

	// Reviews are loaded on read, in insertion order, with each review's
	// user reference expanded.
	Reviews []reviewmodel.Review `json:"reviews"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Storage constraint bounds. These are the persistence layer's own rules and
// intentionally do NOT match the input validator in dto.go (page min 10 here
// vs 5 there, price max 255 here vs 1000 there, publisher min 0 here vs 5
// there). Both layers are kept as-is; see DESIGN.md before "fixing" either.
var (
	storagePriceMin  = decimal.NewFromInt(10)
	storagePriceMax  = decimal.NewFromInt(255)
	storageRatingMax = decimal.NewFromInt(5)
)

// Validate enforces the storage contract. It runs on every write path before
// any SQL does, so a violating document never reaches the database.
func (b *Book) Validate() error {
	var violations []string

	violations = appendLengthViolation(violations, "title", b.Title, 5, 255)
	if b.Subtitle != nil {
		violations = appendLengthViolation(violations, "subtitle", *b.Subtitle, 5, 255)
	}
	if b.Edition != nil {
		violations = appendLengthViolation(violations, "edition", *b.Edition, 5, 255)
	}
	if b.Image == "" {
		violations = append(violations, "image is required")
	}
	if b.Category.ID == uuid.Nil || b.Category.Name == "" {
		violations = append(violations, "category is required")
	}
	if b.Price.LessThan(storagePriceMin) || b.Price.GreaterThan(storagePriceMax) {
		violations = append(violations, "price must be between 10 and 255")
	}
	if b.DiscountPrice != nil &&
		(b.DiscountPrice.LessThan(storagePriceMin) || b.DiscountPrice.GreaterThan(storagePriceMax)) {
		violations = append(violations, "discountPrice must be between 10 and 255")
	}
	if b.Rating.IsNegative() || b.Rating.GreaterThan(storageRatingMax) {
		violations = append(violations, "rating must be between 0 and 5")
	}
	violations = appendLengthViolation(violations, "author", b.Author, 5, 255)
	violations = appendLengthViolation(violations, "description", b.Description, 5, 10000)
	if b.Page < 10 || b.Page > 1000 {
		violations = append(violations, "page must be between 10 and 1000")
	}
	violations = appendLengthViolation(violations, "format", b.Format, 5, 255)
	violations = appendLengthViolation(violations, "publisher", b.Publisher, 0, 255)
	if b.NumberInStock < 0 || b.NumberInStock > 255 {
		violations = append(violations, "numberInStock must be between 0 and 255")
	}

	if len(violations) > 0 {
		return &StorageValidationError{Violations: violations}
	}
	return nil
}

func appendLengthViolation(violations []string, field, value string, min, max int) []string {
	if min > 0 && value == "" {
		return append(violations, fmt.Sprintf("%s is required", field))
	}
	if len(value) < min || len(value) > max {
		return append(violations, fmt.Sprintf("%s must be %d-%d characters", field, min, max))
	}
	return violations
}
