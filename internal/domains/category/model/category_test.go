package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRequestValidate(t *testing.T) {
	require.NoError(t, CategoryRequest{Name: "Software"}.Validate())

	assert.Error(t, CategoryRequest{}.Validate(), "name is required")
	assert.Error(t, CategoryRequest{Name: "Go"}.Validate(), "below 5 characters")
	assert.Error(t, CategoryRequest{Name: strings.Repeat("a", 51)}.Validate(), "above 50 characters")
}
