// The worker runs the scheduled review sync outside the API process.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron"

	automationUC "github.com/reputaai/reputaai/internal/application/automation/usecases"
	syncUC "github.com/reputaai/reputaai/internal/application/sync/usecases"
	"github.com/reputaai/reputaai/internal/infrastructure/auth"
	"github.com/reputaai/reputaai/internal/infrastructure/cache"
	"github.com/reputaai/reputaai/internal/infrastructure/config"
	"github.com/reputaai/reputaai/internal/infrastructure/crypto"
	"github.com/reputaai/reputaai/internal/infrastructure/database"
	"github.com/reputaai/reputaai/internal/infrastructure/email"
	"github.com/reputaai/reputaai/internal/infrastructure/google"
	"github.com/reputaai/reputaai/internal/infrastructure/repository"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

const syncRunTimeout = 30 * time.Minute

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger().With("component", "worker")
	log.Infow("starting sync worker", "environment", env, "schedule", cfg.Sync.Schedule)

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	redisClient, err := cache.NewClient(cfg.Redis)
	if err != nil {
		log.Errorw("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	db := database.Get()
	businessRepo := repository.NewBusinessRepository(db, log)
	accountRepo := repository.NewConnectedAccountRepository(db, log)
	locationRepo := repository.NewConnectedLocationRepository(db, log)
	reviewRepo := repository.NewExternalReviewRepository(db, log)
	ruleRepo := repository.NewAutomationRuleRepository(db, log)

	cipher, err := crypto.NewTokenCipher(cfg.Crypto.TokenSecret)
	if err != nil {
		log.Errorw("failed to build token cipher", "error", err)
		os.Exit(1)
	}

	googleOAuth := auth.NewGoogleOAuthClient(auth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.Google.ClientID,
		ClientSecret: cfg.OAuth.Google.ClientSecret,
		RedirectURL:  cfg.OAuth.Google.RedirectURL,
	})
	profileClient := google.NewClient()
	tokenManager := google.NewTokenManager(accountRepo, cipher, googleOAuth, log)

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	evaluator := automationUC.NewEvaluator(
		ruleRepo, businessRepo, locationRepo, accountRepo, reviewRepo,
		profileClient, tokenManager, emailService, log,
	)

	analyticsCache := cache.NewAnalyticsCache(redisClient)
	syncLock := cache.NewSyncLock(redisClient)

	syncLocationUC := syncUC.NewSyncLocationUseCase(
		accountRepo, businessRepo, reviewRepo,
		profileClient, tokenManager, evaluator, analyticsCache, log,
	)
	syncAllUC := syncUC.NewSyncAllUseCase(locationRepo, syncLocationUC, syncLock, cfg.Sync.Workers, log)

	runSync := func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncRunTimeout)
		defer cancel()

		result, err := syncAllUC.Execute(ctx, syncUC.SyncAllCommand{})
		if err != nil {
			log.Errorw("scheduled sync failed", "error", err)
			return
		}
		log.Infow("scheduled sync completed",
			"locations", result.Locations,
			"processed", result.Processed,
			"new", result.New,
			"failed", result.Failed)
	}

	schedule, err := cron.ParseStandard(cfg.Sync.Schedule)
	if err != nil {
		log.Errorw("invalid sync schedule", "schedule", cfg.Sync.Schedule, "error", err)
		os.Exit(1)
	}

	c := cron.New()
	c.Schedule(schedule, cron.FuncJob(runSync))
	c.Start()
	defer c.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("sync worker stopped")
}
