package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"neurometrics/adapters/postgres"
	"neurometrics/api"
	"neurometrics/internal"
	"neurometrics/internal/config"
	"neurometrics/ports"
)

func main() {
	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := internal.NewDefaultLogger()

	var repo ports.ComparisonRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		pgRepo := postgres.NewComparisonRepository(db)
		if err := pgRepo.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to prepare comparison schema:", err)
		}
		repo = pgRepo
		logger.Info("comparison history enabled")
	}

	server := api.NewServer(cfg, logger, repo)
	logger.Info("starting comparison API on :%s", cfg.Server.Port)
	log.Fatal(server.Start())
}
