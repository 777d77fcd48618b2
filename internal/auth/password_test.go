package auth_test

import (
	"testing"

	"github.com/examhub/examhub-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash, err := auth.HashPassword("Passw0rd!")
		require.NoError(t, err)
		assert.NotEqual(t, "Passw0rd!", hash)
		assert.True(t, auth.CheckPassword("Passw0rd!", hash))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		hash, err := auth.HashPassword("Passw0rd!")
		require.NoError(t, err)
		assert.False(t, auth.CheckPassword("passw0rd!", hash))
		assert.False(t, auth.CheckPassword("", hash))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		h1, err := auth.HashPassword("Passw0rd!")
		require.NoError(t, err)
		h2, err := auth.HashPassword("Passw0rd!")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("malformed digest is a mismatch, not a panic", func(t *testing.T) {
		assert.False(t, auth.CheckPassword("Passw0rd!", "not-a-bcrypt-digest"))
		assert.False(t, auth.CheckPassword("Passw0rd!", ""))
	})
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Passw0rd!", true},
		{"valid without digit", "Password!", true},
		{"too short", "Pa$s", false},
		{"exactly 8 chars", "Abcdef1!", true},
		{"no uppercase", "passw0rd!", false},
		{"no special character", "Passw0rd", false},
		{"only letters", "Password", false},
		{"empty", "", false},
		{"space counts as special", "Pass word", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.IsStrongPassword(tt.password))
		})
	}
}
