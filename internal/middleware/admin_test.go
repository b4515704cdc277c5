package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangentorv/restaurant-booking/internal/repository"
)

type staffStub struct {
	admin bool
	err   error
}

func (s staffStub) IsAdmin(ctx context.Context, id uint64) (bool, error) {
	return s.admin, s.err
}

func runAdmin(t *testing.T, checker AdminChecker, userID interface{}) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", userID)
	}

	reached := false
	h := RequireAdmin(checker)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, reached
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	rec, reached := runAdmin(t, staffStub{admin: true}, float64(7))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestRequireAdminForbidsStaffRole(t *testing.T) {
	rec, reached := runAdmin(t, staffStub{admin: false}, float64(7))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestRequireAdminForbidsOnLookupError(t *testing.T) {
	rec, reached := runAdmin(t, staffStub{err: errors.New("connection reset")}, float64(7))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached, "a lookup error must never let the request through")
}

func TestRequireAdminForbidsMissingRow(t *testing.T) {
	rec, reached := runAdmin(t, staffStub{err: sql.ErrNoRows}, float64(7))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestRequireAdminForbidsMissingSubject(t *testing.T) {
	rec, reached := runAdmin(t, staffStub{admin: true}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestRequireAdminForbidsOnUnreachableStore(t *testing.T) {
	// sql.Open does not dial; the first query fails instead, exactly the
	// degraded state an unconfigured store leaves the server in.
	db, err := sql.Open("mysql", "nobody@tcp(127.0.0.1:1)/none?timeout=1s")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rec, reached := runAdmin(t, repository.NewStaffRepo(db), float64(7))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}
