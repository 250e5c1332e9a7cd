package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrEmptyCollection,
		ErrValidation,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "quote",
			id:          "123",
			expectedMsg: `quote with id "123" not found`,
		},
		{
			name:        "with entity only",
			entity:      "short link",
			id:          "",
			expectedMsg: "short link not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)
			assert.NotErrorIs(t, err, ErrEmptyCollection)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestEmptyCollectionError(t *testing.T) {
	err := NewEmptyCollectionError("quotes")

	assert.Equal(t, "no quotes found", err.Error())
	require.ErrorIs(t, err, ErrEmptyCollection)
	require.ErrorIs(t, err, ErrNotFound, "empty collection is reported as not found")

	var empty *EmptyCollectionError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "quotes", empty.Collection)
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "text",
			message:     "this field is required",
			expectedMsg: "validation failed for text: this field is required",
		},
		{
			name:        "without field",
			message:     "malformed body",
			expectedMsg: "validation failed: malformed body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestIsHelpers_WrappedErrors(t *testing.T) {
	notFound := fmt.Errorf("resolving: %w", NewNotFoundError("short link", "abcde"))
	empty := fmt.Errorf("random pick: %w", NewEmptyCollectionError("quotes"))
	invalid := fmt.Errorf("binding: %w", NewValidationError("url", "required"))

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsEmptyCollection(notFound))
	assert.False(t, IsValidation(notFound))

	assert.True(t, IsNotFound(empty))
	assert.True(t, IsEmptyCollection(empty))

	assert.True(t, IsValidation(invalid))
	assert.False(t, IsNotFound(invalid))

	assert.False(t, IsNotFound(nil))
	assert.False(t, IsEmptyCollection(nil))
	assert.False(t, IsValidation(nil))
}
