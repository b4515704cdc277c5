package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// AdminChecker reports whether the account behind an ID is an active admin.
// *repository.StaffRepo is the production implementation.
type AdminChecker interface {
	IsAdmin(ctx context.Context, id uint64) (bool, error)
}

// RequireAdmin re-reads the staff row behind the token subject on every
// request and only lets confirmed, active ADMIN accounts through.  The role
// claim baked into the JWT is not trusted for the admin console: revoking an
// account takes effect on the next request, not at token expiry.
//
// The check fails closed.  A missing row, a non-admin role, and any lookup
// error all yield 403; only a missing or unverifiable token yields 401,
// which is JWTAuth's job earlier in the chain.
func RequireAdmin(staff AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := subjectID(c)
			if !ok {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			isAdmin, err := staff.IsAdmin(ctx, id)
			if err != nil || !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// subjectID converts the "user_id" context value set by JWTAuth into a
// uint64.  JWT numeric claims decode as float64; string subjects are parsed.
func subjectID(c echo.Context) (uint64, bool) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, true
	case int:
		return uint64(t), true
	case int64:
		return uint64(t), true
	case float64:
		return uint64(t), true
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
