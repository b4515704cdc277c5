package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tangentorv/restaurant-booking/internal/config"
	"github.com/tangentorv/restaurant-booking/internal/database"
	"github.com/tangentorv/restaurant-booking/internal/handler"
	"github.com/tangentorv/restaurant-booking/internal/queue"
	"github.com/tangentorv/restaurant-booking/internal/repository"
	"github.com/tangentorv/restaurant-booking/internal/router"
)

func main() {
	// Optional .env for local development; real environment always wins.
	_ = godotenv.Load()

	cfg := config.Load()

	// The store is deliberately non-fatal: with an unreachable database the
	// server still starts and every query fails individually at its call site.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		if db == nil {
			log.Fatalf("invalid database configuration: %v", err)
		}
		log.Printf("warning: database unreachable (%v); data operations will fail until it recovers", err)
	}
	if cfg.JWTSecret == "" {
		log.Printf("warning: JWT_SECRET is not set; admin endpoints will reject all tokens")
	}

	// Redis is optional. A nil client disables response caching and rate
	// limiting without affecting the rest of the service.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("warning: redis unavailable; menu cache and rate limiting disabled")
	}

	staffRepo := repository.NewStaffRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	menuRepo := repository.NewMenuRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	authHandler := handler.NewAuthHandler(cfg, staffRepo, tokenRepo)
	adminHandler := handler.NewAdminHandler(menuRepo, bookingRepo)
	publicHandler := handler.NewPublicHandler(menuRepo, bookingRepo)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler, rdb)
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret, staffRepo)

	// Background consumer that mirrors booking events to logs/booking.log.
	// It maintains its own reconnect loop and never takes the server down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
