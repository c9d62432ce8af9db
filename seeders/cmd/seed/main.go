package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"elaundry/internal/repositories"
	"elaundry/pkg/config"
	"elaundry/pkg/database/postgresql"
	applogger "elaundry/pkg/logger"
	"elaundry/seeders"
)

func main() {
	runMigrate := flag.Bool("migrate", false, "apply pending schema migrations")
	runBranches := flag.Bool("branches", false, "upsert the default branch catalog")
	runAll := flag.Bool("all", false, "same as -migrate -branches")
	flag.Parse()

	if !*runMigrate && !*runBranches && !*runAll {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		logger.Fatal("could not connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if *runAll || *runMigrate {
		if err := postgresql.Migrate(ctx, pool); err != nil {
			logger.Fatal("migration failed", zap.Error(err))
		}
		logger.Info("migrations applied")
	}

	if *runAll || *runBranches {
		if err := seeders.SeedBranches(ctx, pool, repositories.DefaultBranches(), logger); err != nil {
			logger.Fatal("seeding branches failed", zap.Error(err))
		}
		logger.Info("branches seeded")
	}
}
