package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/farhanhr/cinema-booking-api/internal/config"
	"github.com/farhanhr/cinema-booking-api/internal/database"
	"github.com/farhanhr/cinema-booking-api/internal/handler"
	"github.com/farhanhr/cinema-booking-api/internal/middleware"
	"github.com/farhanhr/cinema-booking-api/internal/queue"
	"github.com/farhanhr/cinema-booking-api/internal/repository"
	"github.com/farhanhr/cinema-booking-api/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis is optional: nil client disables rate limiting and caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	movies := repository.NewMovieRepo(db)
	theaters := repository.NewTheaterRepo(db)
	showtimes := repository.NewShowtimeRepo(db)
	bookings := repository.NewBookingRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	adminH := handler.NewAdminHandler(movies, theaters, showtimes)
	publicH := handler.NewPublicHandler(movies, showtimes)
	bookingH := handler.NewBookingHandler(showtimes, bookings)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterCustomer(e, bookingH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	// Drain booking.confirmed into logs/booking.log in the background.
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
