package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"neurometrics/adapters/postgres"
	"neurometrics/internal"
	"neurometrics/internal/config"
	"neurometrics/ports"
	"neurometrics/ui"
)

func main() {
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
	}

	app, err := ui.NewApp(cfg, logger, repo)
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Printf("Starting Neuro Metrics Lab UI on http://localhost:%s", cfg.Server.Port)
	log.Fatal(app.Start())
}
