package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kisan-backend/internal/auth"
	"kisan-backend/internal/chat"
	"kisan-backend/internal/handler"
	"kisan-backend/internal/llm"
	"kisan-backend/internal/mandi"
	"kisan-backend/internal/repository"
	"kisan-backend/internal/server"
	"kisan-backend/internal/storage"
	"kisan-backend/internal/tasks"
	"kisan-backend/internal/telegram_bot"
	"kisan-backend/internal/users"
	"kisan-backend/internal/vision"
	"kisan-backend/internal/voice"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and, if enabled, the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		// Database connection
		db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := repository.MigrateDB(db, cfg.Database.MigrationsPath, logger); err != nil {
			return err
		}

		// Provider clients. Missing keys put each one in mock mode.
		gen, err := llm.NewGenerator(cfg.Chat, logger)
		if err != nil {
			return fmt.Errorf("creating chat provider: %w", err)
		}
		visionClient, err := vision.NewClient(vision.Config{
			APIKey:   cfg.Vision.APIKey,
			Endpoint: cfg.Vision.Endpoint,
			Timeout:  cfg.ProviderTimeout,
		}, logger)
		if err != nil {
			return err
		}
		voiceClient, err := voice.NewClient(voice.Config{
			APIKey:   cfg.Speech.APIKey,
			Endpoint: cfg.Speech.Endpoint,
			Timeout:  cfg.ProviderTimeout,
		}, logger)
		if err != nil {
			return err
		}
		mandiClient := mandi.NewClient(mandi.Config{
			APIKey:  cfg.Mandi.APIKey,
			BaseURL: cfg.Mandi.BaseURL,
			Timeout: cfg.ProviderTimeout,
		}, logger)

		var images storage.ImageStore
		if cfg.Storage.Enabled() {
			store, err := storage.NewS3ImageStore(cfg.Storage, logger)
			if err != nil {
				logger.Warn("Image archive disabled", zap.Error(err))
			} else {
				images = store
			}
		}

		secret := cfg.Auth.JWTSecret
		if secret == "" {
			if cfg.App.Env == "production" {
				return fmt.Errorf("auth.jwt_secret is required in production")
			}
			secret = uuid.NewString()
			logger.Warn("JWT secret not set, using a random one; tokens will not survive a restart")
		}
		issuer, err := auth.NewIssuer(secret, cfg.Auth.TokenTTL)
		if err != nil {
			return err
		}

		chatService := chat.NewService(gen, logger)

		bot, err := telegram_bot.NewBot(cfg, chatService, mandiClient, logger)
		if err != nil {
			logger.Warn("Failed to initialize Telegram bot, continuing without it", zap.Error(err))
			bot = nil
		}

		// Context for graceful shutdown
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if bot != nil {
			go func() {
				if err := bot.Start(ctx); err != nil {
					logger.Error("Telegram bot failed", zap.Error(err))
				}
			}()
		}

		srv := server.NewServer(server.Deps{
			Chat:   chatService,
			Vision: visionClient,
			Voice:  voiceClient,
			Mandi:  mandiClient,
			Tasks:  tasks.NewService(repository.NewTaskRepository(db, logger), logger),
			Users:  users.NewService(repository.NewUserRepository(db, logger), logger),
			Issuer: issuer,
			Images: images,
			Providers: handler.Providers{
				Chat:   gen != nil,
				Vision: cfg.Vision.APIKey != "",
				Speech: cfg.Speech.APIKey != "",
				Mandi:  cfg.Mandi.APIKey != "",
				Images: images != nil,
			},
		}, cfg.Server.ShutdownTimeout, logger)

		if err := srv.Run(ctx, ":"+cfg.Server.Port); err != nil {
			return fmt.Errorf("server: %w", err)
		}
		logger.Info("Application stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
