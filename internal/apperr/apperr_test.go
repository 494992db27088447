package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *apperr.Error
		want string
	}{
		{name: "FetchFailed", err: apperr.FetchFailed("revenue data"), want: "Failed to fetch revenue data."},
		{name: "NotFound", err: apperr.NotFound("invoice"), want: "Invoice not found."},
		{name: "StoreWrite", err: apperr.StoreWriteFailed("invoice"), want: "Database Error: Failed to write invoice."},
		{name: "Validation", err: apperr.ValidationFailed("credentials"), want: "Invalid credentials."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_NoCauseByDefault(t *testing.T) {
	err := apperr.FetchFailed("invoices")

	assert.Nil(t, errors.Unwrap(err))
}

func TestError_WithCause(t *testing.T) {
	sentinel := errors.New("invalid status")
	base := apperr.FetchFailed("invoice")

	err := base.WithCause(sentinel)

	assert.ErrorIs(t, err, sentinel)
	assert.Nil(t, errors.Unwrap(base))
	assert.Equal(t, "Failed to fetch invoice.", err.Error())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("loading page: %w", apperr.NotFound("invoice"))

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(wrapped))
	assert.Equal(t, apperr.KindNone, apperr.KindOf(errors.New("plain")))
	assert.True(t, apperr.Is(wrapped, apperr.KindNotFound))
	assert.False(t, apperr.Is(nil, apperr.KindNone))
}
