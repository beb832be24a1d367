package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/snnyvrz/shelfshare/catalog-api/internal/config"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/db"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/seed"
	"github.com/spf13/pflag"
)

func main() {
	file := pflag.StringP("file", "f", "testdata/catalog.yaml", "catalog fixture to load")
	timeout := pflag.Duration("timeout", time.Minute, "give up after this long")
	pflag.Parse()

	stats, err := run(config.Load(), *file, *timeout)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("seeded %s from %s", stats, *file)
}

// run returns instead of exiting so the fixture and database are closed on every path.
func run(cfg *config.Config, file string, timeout time.Duration) (seed.Stats, error) {
	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		return seed.Stats{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := db.Migrate(database); err != nil {
		return seed.Stats{}, fmt.Errorf("failed to migrate database: %w", err)
	}

	f, err := os.Open(file)
	if err != nil {
		return seed.Stats{}, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()

	fixture, err := seed.Load(f)
	if err != nil {
		return seed.Stats{}, fmt.Errorf("failed to load %s: %w", file, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stats, err := seed.Apply(ctx, seed.Repos{
		Books:      repository.NewGormBookRepository(database),
		Authors:    repository.NewAuthorRepository(database),
		Publishers: repository.NewPublisherRepository(database),
		Genres:     repository.NewGenreRepository(database),
		Subgenres:  repository.NewSubgenreRepository(database),
	}, fixture)
	if err != nil {
		return stats, fmt.Errorf("seed failed after creating %s: %w", stats, err)
	}
	return stats, nil
}
