// Package main is the entry point for the portfolio API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"folio/internal/cache"
	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/handlers"
	"folio/internal/mailer"
	"folio/internal/router"
	"folio/internal/store"
)

func main() {
	// Structured logger for everything below.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Optional .env file for local development.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Redis for the response cache. The API runs
	// uncached without it.
	var respCache *cache.ResponseCache
	if cfg.RedisHost != "" {
		redisClient, err := cache.Connect(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		respCache = cache.NewResponseCache(redisClient, cache.DefaultResponseTTL)
	} else {
		slog.Warn("redis not configured, response caching disabled")
	}

	// Outbound mail for the contact flow. With no SMTP host configured the
	// sender logs and skips, which keeps development working offline.
	sender := mailer.New(mailer.Config{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPassword,
		From: cfg.MailFrom,
	})

	// Initialize data stores.
	projectStore := store.NewProjectStore(db)
	educationStore := store.NewEducationStore(db)
	experienceStore := store.NewExperienceStore(db)
	skillStore := store.NewSkillStore(db)
	roleStore := store.NewRoleStore(db)
	resumeStore := store.NewResumeStore(db)
	aboutStore := store.NewAboutStore(db)
	homeStore := store.NewHomeStore(db)
	settingStore := store.NewSiteSettingStore(db)
	contactStore := store.NewContactStore(db)

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(projectStore, educationStore,
		experienceStore, skillStore, roleStore, resumeStore, aboutStore,
		homeStore, settingStore, respCache)
	contactHandlers := handlers.NewContact(contactStore, sender, cfg.MailFrom, cfg.MailOwner)

	// Set up the Chi router with all middleware and routes.
	r := router.New(publicHandlers, contactHandlers, cfg.MediaRoot, cfg.CORSOrigins)

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate the two synchronous SMTP round trips in the contact flow.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
