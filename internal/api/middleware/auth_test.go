package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/examhub/examhub-api/internal/api/middleware"
	"github.com/examhub/examhub-api/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func protectedHandler(t *testing.T, wantID uint64, wantEmail string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantID, middleware.GetUserID(r.Context()))
		assert.Equal(t, wantEmail, middleware.GetUserEmail(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	jwtService := testutil.CreateTestJWTService()

	t.Run("valid token passes identity to the handler", func(t *testing.T) {
		token, err := jwtService.GenerateToken(42, "mw@x.com")
		assert.NoError(t, err)

		handler := middleware.Auth(jwtService)(protectedHandler(t, 42, "mw@x.com"))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	rejects := func(t *testing.T, authorization string) {
		t.Helper()

		called := false
		handler := middleware.Auth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest("GET", "/", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"message":"Yetkisiz"}`, rr.Body.String())
	}

	t.Run("missing header", func(t *testing.T) {
		rejects(t, "")
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		token, err := jwtService.GenerateToken(42, "mw@x.com")
		assert.NoError(t, err)
		rejects(t, "Basic "+token)
	})

	t.Run("garbage token", func(t *testing.T) {
		rejects(t, "Bearer not-a-jwt")
	})

	t.Run("tampered signature", func(t *testing.T) {
		token, err := jwtService.GenerateToken(42, "mw@x.com")
		assert.NoError(t, err)
		rejects(t, "Bearer "+token+"x")
	})
}

func TestContextHelpers_ZeroValues(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	assert.Zero(t, middleware.GetUserID(req.Context()))
	assert.Empty(t, middleware.GetUserEmail(req.Context()))
}
