package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"formatted with plus", "+7 (900) 123-45-67", "+79001234567"},
		{"bare digits", "79001234567", "79001234567"},
		{"dots and spaces", "8 900.123.45.67", "89001234567"},
		{"no digits", "call me", ""},
		{"empty", "", ""},
		{"plus only survives at the front", "79+001234567", "79001234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}

func TestRatingInRange(t *testing.T) {
	for rating := MinRating; rating <= MaxRating; rating++ {
		assert.True(t, RatingInRange(rating))
	}
	assert.False(t, RatingInRange(0))
	assert.False(t, RatingInRange(6))
}
