// main.go
package main

import (
	"context"
	"log"

	"customer-feedback/cmd"
	"customer-feedback/internal/data/cache"
	"customer-feedback/internal/data/repository"
	"customer-feedback/internal/wire"
	"customer-feedback/pkg/database"
	"customer-feedback/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("feedback_api", config.Feedback.APIURL),
		zap.Bool("mock_api", config.Feedback.MockAPIEnabled),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// The mock API is the only thing that needs a database
	var repos *repository.Repository
	if config.Feedback.MockAPIEnabled {
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		repos = repository.NewRepository(db, logger)
		if err := repos.Comment.EnsureSchema(ctx); err != nil {
			logger.Fatal("Failed to prepare database schema", zap.Error(err))
		}

		logger.Info("Database connected successfully")
	}

	var distCache cache.DistributionCache = cache.NoopDistributionCache{}
	if config.Redis.Enabled() {
		rdb, err := database.NewRedisClient(ctx, config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, distribution cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			distCache = cache.NewRedisDistributionCache(rdb, config.Feedback.CacheTTL, logger)
			logger.Info("Redis connected", zap.String("addr", config.Redis.Addr()))
		}
	}

	// Wire all dependencies
	app, err := wire.Wiring(repos, distCache, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
