package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"migrationbot/internal/config"
	"migrationbot/internal/handler"
	"migrationbot/internal/middleware"
	"migrationbot/internal/repository/memory"
	"migrationbot/internal/server"
	"migrationbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const serviceName = "migration-bot"

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Migration Service Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully", zap.String("port", cfg.Server.Port))

	// Initialize Telegram bot. Updates arrive through our own HTTP endpoint,
	// so the bot is never started and handlers run in the request goroutine.
	bot, err := tele.NewBot(tele.Settings{
		Token:       cfg.BotToken,
		Synchronous: true,
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Sender() != nil {
				fields = append(fields, zap.Int64("user_id", c.Sender().ID))
			}
			logger.Error("Bot handler failed", fields...)
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	if cfg.Server.PublicURL != "" {
		if err := registerWebhook(bot, cfg.Server.PublicURL); err != nil {
			logger.Fatal("Failed to register webhook", zap.Error(err))
		}
		logger.Info("Webhook registered", zap.String("url", cfg.Server.PublicURL))
	}

	// Initialize services
	sessionRepo := memory.NewSessionRepo()
	conversationService := service.NewConversationService(sessionRepo, logger)

	// Initialize handler
	h := handler.NewHandler(bot, conversationService, logger)
	h.RegisterHandlers(
		middleware.LoggingMiddleware(logger),
		middleware.SerializeBySender(),
	)

	logger.Info("Handlers registered")

	// Initialize HTTP server
	app := server.NewApp(serviceName, logger)
	server.RegisterRoutes(app, server.RouteConfig{
		Webhook: server.NewWebhookHandler(bot, logger),
		Health:  server.NewHealthHandler(serviceName),
	})

	// Start server in background
	go func() {
		logger.Info("Listening for webhook updates", zap.String("addr", cfg.Addr()))
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan

	logger.Info("Shutdown signal received, stopping server...", zap.String("signal", sig.String()))

	// Graceful shutdown
	if err := app.Shutdown(); err != nil {
		logger.Error("Failed to shut down HTTP server", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully",
		zap.Int("sessions_dropped", sessionRepo.Count()),
	)
}

// registerWebhook points Telegram at the public URL of this service
func registerWebhook(bot *tele.Bot, publicURL string) error {
	err := bot.SetWebhook(&tele.Webhook{
		Endpoint: &tele.WebhookEndpoint{PublicURL: publicURL},
	})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}
