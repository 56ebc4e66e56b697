package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/pkg/auth"
)

func identityEcho(t *testing.T, got *auth.Identity, found *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromCtx(r)
		*got, *found = id, ok
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRejectsMissingToken(t *testing.T) {
	var id auth.Identity
	var ok bool
	handler := Auth(identityEcho(t, &id, &ok))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	var id auth.Identity
	var ok bool
	handler := Auth(identityEcho(t, &id, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthResolvesIdentity(t *testing.T) {
	token, err := auth.GenerateToken(7, true)
	require.NoError(t, err)

	var id auth.Identity
	var ok bool
	handler := Auth(identityEcho(t, &id, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, uint(7), id.ID)
	assert.True(t, id.IsStaff)
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	var id auth.Identity
	var ok bool
	handler := OptionalAuth(identityEcho(t, &id, &ok))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)
}

func TestOptionalAuthResolvesWhenPresent(t *testing.T) {
	token, err := auth.GenerateToken(3, false)
	require.NoError(t, err)

	var id auth.Identity
	var ok bool
	handler := OptionalAuth(identityEcho(t, &id, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.True(t, ok)
	assert.Equal(t, uint(3), id.ID)
}
