package validation_test

import (
	"strings"
	"testing"

	"github.com/examhub/examhub-api/internal/api/validation"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@x.com", true},
		{"user.name+tag@example.co.uk", true},
		{"", false},
		{"not-an-email", false},
		{"@x.com", false},
		{"a@", false},
		{"a@x", false},
		{strings.Repeat("a", 250) + "@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsValidEmail(tt.email))
		})
	}
}

func TestIsValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"1234", true},
		{"9999", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsValidCode(tt.code))
		})
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", validation.SanitizeString("hel\x00lo"))
	assert.Equal(t, "a\nb", validation.SanitizeString("a\nb"))
	assert.Equal(t, "ab", validation.SanitizeString("a\x1bb"))
}
