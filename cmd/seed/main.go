package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"photobooking/internal/config"
	"photobooking/internal/database"
	"photobooking/internal/modules/catalog"
	"photobooking/internal/pkg/logger"
	"photobooking/internal/repository"
)

// seed migrates the schema and loads the photographer roster from the
// catalog file. Re-running it updates existing rows in place.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, lg)
	if err != nil {
		lg.Fatal("DB connection failed", zap.Error(err))
	}

	lg.Info("running migrations")
	if err := database.Migrate(db); err != nil {
		lg.Fatal("migration failed", zap.Error(err))
	}

	f, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		lg.Fatal("catalog load failed", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}

	repo := repository.NewPhotographerRepository(db)
	if err := repo.Upsert(context.Background(), f.Photographers); err != nil {
		lg.Fatal("seeding photographers failed", zap.Error(err))
	}

	for _, p := range f.Photographers {
		lg.Info("photographer seeded", zap.String("id", p.ID), zap.String("name", p.Name), zap.String("availability", string(p.Availability)))
	}
	lg.Info("seed complete", zap.Int("photographers", len(f.Photographers)), zap.Int("services", len(f.Services)))
}
