package auth_test

import (
	"strconv"
	"testing"

	"github.com/examhub/examhub-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := auth.GenerateCode()
		require.Len(t, code, 4)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestCodeTTLs(t *testing.T) {
	// The reset window is deliberately much shorter than the
	// registration-verification window.
	assert.Less(t, auth.ResetCodeTTL, auth.VerificationCodeTTL)
}
