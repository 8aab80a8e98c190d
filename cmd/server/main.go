package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/config"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/database"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/hotel"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/queue"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/repository"
	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/router"
)

func main() {
	// Load .env if present; real environments set variables directly.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("database: %v", err)
	}

	// Load the full hotel state before serving requests.
	desk := hotel.NewDesk(repository.NewStore(db))
	if err := desk.Load(ctx); err != nil {
		log.Fatalf("load state: %v", err)
	}

	// Optional Redis for report caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; caching and rate limiting disabled")
	}

	// Background consumer turning stay events into the audit log.
	go func() {
		if err := queue.StartStayConsumer(); err != nil {
			log.Printf("stay consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, desk, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
