package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// BookRequest is the create/update payload. The same full field set is
// required for both: update is a wholesale replace, not a patch.
type BookRequest struct {
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle"`
	Edition  *string `json:"edition"`
	Image    string  `json:"image"`

	// CategoryID is optional at this layer even though create/update refuse
	// to proceed without a resolvable category. Inherited mismatch, kept.
	CategoryID string `json:"categoryId"`

	Price         *decimal.Decimal `json:"price"`
	Author        string           `json:"author"`
	Description   string           `json:"description"`
	Page          *int             `json:"page"`
	Format        string           `json:"format"`
	Publisher     string           `json:"publisher"`
	NumberInStock *int             `json:"numberInStock"`
	DiscountPrice *decimal.Decimal `json:"discountPrice"`
	AddToCart     bool             `json:"addToCart"`
	Rating        *decimal.Decimal `json:"rating"`
}

// Validate is the input-shape layer. Its bounds deliberately differ from the
// storage contract in book.go (price max 1000 vs 255, page min 5 vs 10,
// publisher min 5 vs 0); do not align them silently.
func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Subtitle, validation.Length(5, 255)),
		validation.Field(&r.Edition, validation.Length(5, 255)),
		validation.Field(&r.Image, validation.Required.Error("image is required")),
		validation.Field(&r.CategoryID, is.UUID.Error("categoryId must be a valid id")),
		validation.Field(&r.Price,
			validation.NotNil.Error("price is required"),
			decimalBetween(10, 1000),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.Length(5, 10000),
		),
		validation.Field(&r.Page,
			validation.NotNil.Error("page is required"),
			validation.Min(5),
			validation.Max(1000),
		),
		validation.Field(&r.Format,
			validation.Required.Error("format is required"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Publisher,
			validation.Required.Error("publisher is required"),
			validation.Length(5, 255),
		),
		validation.Field(&r.NumberInStock,
			validation.NotNil.Error("numberInStock is required"),
			validation.Min(0),
		),
		validation.Field(&r.Rating, decimalBetween(0, 5)),
	)
}

// decimalBetween validates a decimal range; nil values are left to NotNil.
func decimalBetween(min, max int64) validation.Rule {
	return validation.By(func(value interface{}) error {
		var d decimal.Decimal
		switch v := value.(type) {
		case decimal.Decimal:
			d = v
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			d = *v
		default:
			return nil
		}
		if d.LessThan(decimal.NewFromInt(min)) || d.GreaterThan(decimal.NewFromInt(max)) {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	})
}
