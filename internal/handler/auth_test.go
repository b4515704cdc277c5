package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangentorv/restaurant-booking/internal/config"
	"github.com/tangentorv/restaurant-booking/internal/repository"
	"github.com/tangentorv/restaurant-booking/internal/utils"
)

const authTestSecret = "unit-test-secret"

func logoutContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBearerSubject(t *testing.T) {
	tok, err := utils.NewAccessToken(authTestSecret, 42, "ADMIN", 5)
	require.NoError(t, err)

	c, _ := logoutContext(t, "Bearer "+tok.Token)
	id, ok := bearerSubject(c, authTestSecret)
	require.True(t, ok)
	assert.Equal(t, uint64(42), id)
}

func TestBearerSubjectRejectsWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 42, "ADMIN", 5)
	require.NoError(t, err)

	c, _ := logoutContext(t, "Bearer "+tok.Token)
	_, ok := bearerSubject(c, authTestSecret)
	assert.False(t, ok)
}

func TestBearerSubjectRejectsMissingHeader(t *testing.T) {
	c, _ := logoutContext(t, "")
	_, ok := bearerSubject(c, authTestSecret)
	assert.False(t, ok)
}

func TestLogoutWithoutCredentials(t *testing.T) {
	h := NewAuthHandler(config.Config{JWTSecret: authTestSecret}, nil, nil)

	c, rec := logoutContext(t, "")
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutWithInvalidBearer(t *testing.T) {
	h := NewAuthHandler(config.Config{JWTSecret: authTestSecret}, nil, nil)

	c, rec := logoutContext(t, "Bearer not.a.jwt")
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutAllReachesTokenStore(t *testing.T) {
	// A valid bearer with no refresh token in the body must take the
	// revoke-all path.  With an unreachable store the revocation itself
	// fails, surfacing as 500 rather than a silent 204.
	db, err := sql.Open("mysql", "nobody@tcp(127.0.0.1:1)/none?timeout=1s")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	h := NewAuthHandler(config.Config{JWTSecret: authTestSecret}, nil, repository.NewTokenRepo(db))

	tok, err := utils.NewAccessToken(authTestSecret, 42, "ADMIN", 5)
	require.NoError(t, err)

	c, rec := logoutContext(t, "Bearer "+tok.Token)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
