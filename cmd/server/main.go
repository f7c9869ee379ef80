package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/adiguzelburak/bus-ticket/internal/config"
	"github.com/adiguzelburak/bus-ticket/internal/database"
	"github.com/adiguzelburak/bus-ticket/internal/handler"
	"github.com/adiguzelburak/bus-ticket/internal/middleware"
	"github.com/adiguzelburak/bus-ticket/internal/repository"
	"github.com/adiguzelburak/bus-ticket/internal/router"
	"github.com/adiguzelburak/bus-ticket/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// Pick the data source: MySQL when configured, otherwise the seeded
	// in-memory fixture set covering the next seven days.
	var st store.Store
	if cfg.UseDatabase() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		st = repository.New(db)
		log.Printf("using mysql store at %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	} else {
		st = store.NewMemory(time.Now())
		log.Printf("using seeded in-memory store")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Redis is optional: without it the cache and limiter pass through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	h := router.Handlers{
		Reference:  handler.NewReferenceHandler(st),
		Schedule:   handler.NewScheduleHandler(st),
		SeatSchema: handler.NewSeatSchemaHandler(st),
		Ticket:     handler.NewTicketHandler(st, cfg.TicketSecret, cfg.SaleDelay),
	}
	router.RegisterRoutes(e)
	router.RegisterAPI(e, h, cache, limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
