package main

import (
	"log"

	"field-booking/cmd"
	"field-booking/internal/data/repository"
	"field-booking/internal/notify"
	"field-booking/internal/wire"
	"field-booking/pkg/database"
	"field-booking/pkg/utils"

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
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outbound notifications: webhook delivery behind a redis queue, with
	// a direct fallback when the queue is down.
	webhook := notify.NewWebhookNotifier(repos.Setting, logger)
	dispatcher := notify.NewQueueDispatcher(config.Redis, webhook, logger)
	defer dispatcher.Close()

	worker := notify.NewWorker(config.Redis, webhook, logger)
	worker.Start()
	defer worker.Shutdown()

	// Wire all dependencies
	app := wire.Wiring(repos, dispatcher, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
