// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/tangentorv/restaurant-booking/internal/config"
	"github.com/tangentorv/restaurant-booking/internal/handler"
	"github.com/tangentorv/restaurant-booking/internal/middleware"
	"github.com/tangentorv/restaurant-booking/internal/repository"
)

// RegisterRoutes registers routes that need neither authentication nor any
// repository: currently only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the staff authentication endpoints.  Token-issuing
// operations live under /v1/auth without middleware; /v1/me sits behind the
// JWT check so it can echo back the verified identity.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(repository.RoleAdmin, repository.RoleStaff))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the visitor-facing endpoints: the available-only
// menu (behind the Redis response cache) and the booking intake form (behind
// the token-bucket rate limiter).  With rdb == nil both middlewares are
// pass-throughs.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client) {
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e.GET("/v1/menu", p.GetMenu, cache)
	e.POST("/v1/bookings", p.CreateBooking, limiter)
}

// RegisterAdmin registers the management console endpoints.  Every route
// requires a valid access token and then a fresh, fail-closed admin role
// lookup against the staff table.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string, staff *repository.StaffRepo) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireAdmin(staff))

	g.GET("/menu", h.ListMenu)
	g.POST("/menu", h.CreateMenuItem)
	g.PUT("/menu/:id", h.UpdateMenuItem)
	g.PATCH("/menu/:id/availability", h.ToggleAvailability)
	g.DELETE("/menu/:id", h.DeleteMenuItem)

	g.GET("/bookings", h.ListBookings)
	g.GET("/bookings/:id/transitions", h.BookingTransitions)
	g.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
	g.DELETE("/bookings/:id", h.DeleteBooking)
}
