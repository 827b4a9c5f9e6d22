package model

import (
	"errors"
	"strings"
)

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrInvalidCategory means the referenced category did not exist at
	// write time. The snapshot reference is not enforced afterwards.
	ErrInvalidCategory = errors.New("invalid category")
)

// StorageValidationError reports documents that violate the persistence
// layer's constraint set. Distinct from the input validator's failures:
// a payload can pass the input rules and still land here (price 500,
// page 7), which is the documented discrepancy between the two layers.
type StorageValidationError struct {
	Violations []string
}

func (e *StorageValidationError) Error() string {
	return "storage validation failed: " + strings.Join(e.Violations, "; ")
}
