package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrConflict,
		ErrValidation,
		ErrForbidden,
		ErrUnavailable,
		ErrInvalidState,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b, "sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "not found with id",
			err:      NewNotFoundError(EntityQuotation, "q-1"),
			expected: `quotation with id "q-1" not found`,
		},
		{
			name:     "not found without id",
			err:      NewNotFoundError(EntityAuthor, ""),
			expected: "author not found",
		},
		{
			name:     "conflict",
			err:      NewConflictError(EntitySource, "title and type already exist"),
			expected: "source conflict: title and type already exist",
		},
		{
			name:     "validation with field",
			err:      NewValidationError("text", "is required"),
			expected: "validation failed for text: is required",
		},
		{
			name:     "validation without field",
			err:      NewValidationError("", "bad input"),
			expected: "validation failed: bad input",
		},
		{
			name:     "forbidden",
			err:      NewForbiddenError("approve", "reviewer role required"),
			expected: `operation "approve" forbidden: reviewer role required`,
		},
		{
			name:     "unavailable",
			err:      NewUnavailableError("meilisearch", "connection refused"),
			expected: `service "meilisearch" unavailable: connection refused`,
		},
		{
			name:     "invalid state",
			err:      NewInvalidStateError(EntityQuotation, "q-1", "approve", StatusApproved),
			expected: `cannot approve quotation "q-1": status is approved, expected pending`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	err := &ValidationError{
		Field:   "text",
		Message: "is required",
		Fields:  map[string]string{"text": "is required", "authorName": "is required"},
	}

	assert.Equal(t, "validation failed: authorName: is required; text: is required", err.Error())
	assert.Equal(t, map[string]string{"text": "is required", "authorName": "is required"}, err.Details())
}

func TestValidationError_DetailsIncludesPrimaryField(t *testing.T) {
	var verr *ValidationError
	require.ErrorAs(t, NewValidationError("rejectionReason", "too short"), &verr)

	assert.Equal(t, map[string]string{"rejectionReason": "too short"}, verr.Details())
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NewNotFoundError("x", "1"), IsNotFound},
		{"conflict", NewConflictError("x", "dup"), IsConflict},
		{"validation", NewValidationError("f", "bad"), IsValidation},
		{"forbidden", NewForbiddenError("op", ""), IsForbidden},
		{"unavailable", NewUnavailableError("svc", ""), IsUnavailable},
		{"invalid state", NewInvalidStateError("x", "1", "reject", StatusRejected), IsInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(errors.New("plain")))
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	original := NewInvalidStateError(EntityQuotation, "q-9", "approve", StatusRejected)
	wrapped := fmt.Errorf("review service: %w", original)

	assert.True(t, IsInvalidState(wrapped))

	var stateErr *InvalidStateError
	require.ErrorAs(t, wrapped, &stateErr)
	assert.Equal(t, StatusRejected, stateErr.Current)
	assert.Equal(t, "q-9", stateErr.ID)
}
