package main

import (
	"time"

	"employee_voting_system/configs"
	"employee_voting_system/internal/db"
	"employee_voting_system/internal/db/repositories"
	"employee_voting_system/internal/di"
	"employee_voting_system/internal/services"

	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	s := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadPollStatusServiceConfig()
	logger := di.NewLogger(config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	pollRepository := repositories.NewPollRepository(database)
	statusService := services.NewPollStatusService(pollRepository, logger)

	// Each run recomputes statuses from the poll windows alone, so a
	// missed or repeated tick converges on the next one.
	s.Every(config.Scheduler.ReconcileInterval).Do(func() {
		if _, _, err := statusService.Reconcile(time.Now().UTC()); err != nil {
			logger.Errorw("reconcile pass failed", "error", err)
		}
	})

	logger.Infow("starting scheduler", "interval", config.Scheduler.ReconcileInterval)
	s.StartBlocking()
}
