package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chat-direct/auth"
	"chat-direct/internal"
	"chat-direct/moderation"
	"chat-direct/observability"
	"chat-direct/repositories"
	"chat-direct/runtime"
	"chat-direct/runtime/workers"
	"chat-direct/services"
	"chat-direct/transport/httpapi"
	"chat-direct/transport/ws"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Deferred cleanups (database, index) are guaranteed to execute before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. Storage (BadgerDB & Bluge)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	messageRepository := repositories.NewMessageRepository(db, logger)
	userRepository := repositories.NewUserRepository(db)
	searchIndex := repositories.NewSearchIndex(blugeWriter, logger)

	// 3. Moderation
	words, err := moderation.LoadEmbeddedWords()
	if err != nil {
		return exitConfig, fmt.Errorf("word list error: %w", err)
	}
	moderator, err := moderation.NewModerator(words, charReplacement)
	if err != nil {
		return exitConfig, fmt.Errorf("moderator init failed: %w", err)
	}

	// 4. Supervision & Background Workers
	stats := observability.NewDeliveryStats()
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	presenceWriter := workers.NewPresenceWriter(logger, userRepository, config.PresenceBufferSize)
	sup.Add(presenceWriter)
	sup.Add(workers.NewTelemetryWorker(logger, stats, config.MetricInterval))

	// 5. Services
	registry := runtime.NewRegistry()
	issuer := auth.NewTokenIssuer(config.JWTSecret, config.AuthTokenDuration)

	presenceService := services.NewPresenceService(logger, registry, presenceWriter.Updates(), stats, config.SinkTimeout)
	deliveryService := services.NewDeliveryService(logger, messageRepository, userRepository,
		searchIndex, registry, &moderator, stats, config.SinkTimeout, config.MaxTextLength)
	receiptService := services.NewReceiptService(logger, messageRepository, registry, stats, config.SinkTimeout)
	typingService := services.NewTypingService(logger, registry, config.TypingTTL, config.SinkTimeout)
	defer typingService.Shutdown()
	authService := services.NewAuthService(userRepository, issuer)
	historyService := services.NewHistoryService(logger, messageRepository, searchIndex)
	profileService := services.NewProfileService(userRepository)

	// 6. Transport
	gateway := ws.NewGateway(logger, issuer, config.ConnectionBufferSize,
		presenceService, deliveryService, receiptService, typingService)
	router := httpapi.NewRouter(issuer, gateway,
		httpapi.NewAuthHandler(authService),
		httpapi.NewUserHandler(profileService),
		httpapi.NewMessageHandler(historyService, receiptService),
		httpapi.NewStatsHandler(stats))

	// 7. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)

	go func() {
		logger.Info("Starting background workers...")
		sup.Run(ctx)
	}()

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: router}

	go func() {
		logger.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 9. Graceful Shutdown
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.ERROR)
	}

	return options
}
