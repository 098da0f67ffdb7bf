// Command seed loads the default treatment catalog into the services collection.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print the catalog without writing it")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog := defaultCatalog()
	if *dryRun {
		for _, svc := range catalog {
			logger.Info("service", zap.String("name", svc.Name), zap.Int("slots", len(svc.Slots)))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("seed: database unavailable", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := serviceRepo.NewMongoServiceRepo(client.Database(cfg.DatabaseName))
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warn("seed: failed to ensure indexes", zap.Error(err))
	}

	for _, svc := range catalog {
		if err := repo.UpsertByName(ctx, svc); err != nil {
			logger.Fatal("seed: failed to upsert service", zap.String("name", svc.Name), zap.Error(err))
		}
	}
	logger.Info("Seeded service catalog", zap.Int("services", len(catalog)), zap.String("database", cfg.DatabaseName))
}
