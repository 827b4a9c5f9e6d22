package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBook() *Book {
	return &Book{
		ID:    uuid.New(),
		Title: "Clean Code",
		Image: "x.png",
		Category: CategorySnapshot{
			ID:   uuid.New(),
			Name: "Software",
		},
		Price:         decimal.NewFromInt(20),
		Rating:        decimal.Zero,
		Author:        "R. Martin Jr.",
		Description:   "AAAAAAAAAA",
		Page:          100,
		Format:        "Paperback",
		Publisher:     "PH",
		PublishDate:   time.Now(),
		NumberInStock: 60,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func TestBookValidate_ValidBook(t *testing.T) {
	require.NoError(t, validBook().Validate())
}

func TestBookValidate_StorageBoundsDifferFromInputBounds(t *testing.T) {
	// The input validator accepts price up to 1000 and page down to 5;
	// the storage contract does not. These cases pass BookRequest.Validate
	// but must be stopped here, before any SQL runs.
	t.Run("price above storage max", func(t *testing.T) {
		b := validBook()
		b.Price = decimal.NewFromInt(500)

		err := b.Validate()
		var storageErr *StorageValidationError
		require.ErrorAs(t, err, &storageErr)
		assert.Contains(t, storageErr.Violations, "price must be between 10 and 255")
	})

	t.Run("page below storage min", func(t *testing.T) {
		b := validBook()
		b.Page = 7

		err := b.Validate()
		var storageErr *StorageValidationError
		require.ErrorAs(t, err, &storageErr)
		assert.Contains(t, storageErr.Violations, "page must be between 10 and 1000")
	})

	t.Run("empty publisher allowed by storage", func(t *testing.T) {
		// Storage publisher min is 0; the input layer demands 5.
		b := validBook()
		b.Publisher = ""
		require.NoError(t, b.Validate())
	})
}

func TestBookValidate_RequiredFields(t *testing.T) {
	b := validBook()
	b.Image = ""
	b.Category = CategorySnapshot{}

	err := b.Validate()
	var storageErr *StorageValidationError
	require.ErrorAs(t, err, &storageErr)
	assert.Contains(t, storageErr.Violations, "image is required")
	assert.Contains(t, storageErr.Violations, "category is required")
}

func TestBookValidate_NumericRanges(t *testing.T) {
	b := validBook()
	b.NumberInStock = 300
	b.Rating = decimal.NewFromInt(6)
	discount := decimal.NewFromInt(5)
	b.DiscountPrice = &discount

	err := b.Validate()
	var storageErr *StorageValidationError
	require.ErrorAs(t, err, &storageErr)
	assert.Contains(t, storageErr.Violations, "numberInStock must be between 0 and 255")
	assert.Contains(t, storageErr.Violations, "rating must be between 0 and 5")
	assert.Contains(t, storageErr.Violations, "discountPrice must be between 10 and 255")
}

func TestBookValidate_OptionalStringBounds(t *testing.T) {
	b := validBook()
	short := "abc"
	b.Subtitle = &short

	err := b.Validate()
	var storageErr *StorageValidationError
	require.ErrorAs(t, err, &storageErr)
	assert.Contains(t, storageErr.Violations, "subtitle must be 5-255 characters")
}
