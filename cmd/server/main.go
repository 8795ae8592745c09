// Command server runs the schedule query and favorites API.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ositola/schedule-planner/internal/config"
	"github.com/ositola/schedule-planner/internal/database"
	"github.com/ositola/schedule-planner/internal/handler"
	"github.com/ositola/schedule-planner/internal/queue"
	"github.com/ositola/schedule-planner/internal/repository"
	"github.com/ositola/schedule-planner/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins either way
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	scheduleRepo := repository.NewScheduleRepo(db)
	h := router.Handlers{
		Auth: &handler.AuthHandler{
			Users:          repository.NewUserRepo(db),
			Tokens:         repository.NewTokenRepo(db),
			JWTSecret:      cfg.JWTSecret,
			AccessTTLMin:   cfg.AccessTTLMin,
			RefreshTTLDays: cfg.RefreshTTLDays,
			BcryptCost:     cfg.BcryptCost,
		},
		Schedules: &handler.ScheduleHandler{Repo: scheduleRepo},
		Favorites: &handler.FavoriteHandler{
			Favorites: repository.NewFavoriteRepo(db),
			Schedules: scheduleRepo,
		},
	}

	e := echo.New()
	router.Register(e, h, cfg.JWTSecret, rdb)

	// Log generate-run events arriving on the broker while the API serves.
	go func() {
		if err := queue.StartRunConsumer(); err != nil {
			log.Printf("run consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
