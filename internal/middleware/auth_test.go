package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/product-inventory/internal/utils"
)

const testSecret = "test-secret"

func runGuard(t *testing.T, token string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/product/getProducts", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, Authenticate(testSecret)(next)(c))
	return rec, c, reached
}

func TestAuthenticate_MissingToken(t *testing.T) {
	rec, _, reached := runGuard(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization token is required.")
	assert.False(t, reached, "handler must not run without a token")
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	rec, _, reached := runGuard(t, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token. Please log in again.")
	assert.False(t, reached)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("another-secret", 42)
	require.NoError(t, err)

	rec, _, reached := runGuard(t, tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	// The raw token is the full header value; no "Bearer " prefix.
	tok, err := utils.NewAccessToken(testSecret, 42)
	require.NoError(t, err)

	rec, c, reached := runGuard(t, tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, uint64(42), c.Get(UserIDKey))
}

func TestAuthenticate_BearerPrefixIsNotStripped(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42)
	require.NoError(t, err)

	rec, _, reached := runGuard(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
