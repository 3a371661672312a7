package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"employee_voting_system/configs"
	"employee_voting_system/internal/db"
	"employee_voting_system/internal/db/repositories"
	"employee_voting_system/internal/di"
	"employee_voting_system/internal/httpapi"
	"employee_voting_system/internal/notify"
	"employee_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	config, err := configs.LoadVotingPortalConfig()
	logger := di.NewLogger(config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	if !config.App.IsDevEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	userRepository := repositories.NewUserRepository(database)
	pendingUserRepository := repositories.NewPendingUserRepository(database)
	pollRepository := repositories.NewPollRepository(database)
	voteRepository := repositories.NewVoteRepository(database)

	notifier := buildNotifier(config, logger)

	signupService := services.NewSignupService(userRepository, pendingUserRepository, logger)
	otpService := services.NewOTPService(userRepository)
	votingService := services.NewVotingService(userRepository, pollRepository, voteRepository, logger)
	pollAdminService := services.NewPollAdminService(userRepository, pollRepository, notifier, logger)
	pollQueryService := services.NewPollQueryService(userRepository, pollRepository, voteRepository)

	authHandler := httpapi.NewAuthHandler(config.HTTP, userRepository, signupService, otpService, notifier, logger)
	userHandler := httpapi.NewUserHandler(userRepository, votingService, pollQueryService, logger)
	adminHandler := httpapi.NewAdminHandler(userRepository, signupService, pollAdminService, pollQueryService, logger)

	router := httpapi.NewRouter(config.HTTP, authHandler, userHandler, adminHandler, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.HTTP.Port),
		Handler: router,
	}

	go func() {
		logger.Infow("starting http server", "port", config.HTTP.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("http server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorw("forced shutdown", "error", err)
	}
	logger.Info("server stopped")
}

func buildNotifier(config configs.VotingPortalConfig, logger *zap.SugaredLogger) notify.Notifier {
	var notifiers []notify.Notifier

	if config.SMTP.Enabled() {
		notifiers = append(notifiers, notify.NewMailer(config.SMTP))
	} else {
		logger.Warn("smtp not configured, otp codes will not be delivered")
	}

	if config.Telegram.Enabled() {
		telegramNotifier, err := notify.NewTelegramNotifier(config.Telegram)
		if err != nil {
			logger.Errorw("failed to create telegram notifier", "error", err)
		} else {
			notifiers = append(notifiers, telegramNotifier)
		}
	}

	if len(notifiers) == 0 {
		return notify.NewNoop()
	}
	return notify.NewMulti(notifiers...)
}
