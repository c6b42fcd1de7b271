package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kvanta/cardgen/app/api"
	"github.com/kvanta/cardgen/app/cache"
	"github.com/kvanta/cardgen/app/cfg"
	"github.com/kvanta/cardgen/app/content"
	"github.com/kvanta/cardgen/app/database"
	"github.com/kvanta/cardgen/app/rules"
	"github.com/kvanta/cardgen/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	slog.Info("Starting Card Gen server", "version", appCfg.Version)

	db, err := database.NewConnection(
		appCfg.DBHost, appCfg.DBPort, appCfg.DBUser,
		appCfg.DBPassword, appCfg.DBName)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "migration_version", version, "dirty", dirty)

	cardRules := rules.NewLoader(appCfg.RulesFile).Run()
	slog.Info("Parsing rules ready",
		"groups", len(cardRules.Groups),
		"attributes", len(cardRules.Attributes),
		"doc_types", len(cardRules.DocTypes))

	var cardCache *cache.Cache
	if appCfg.RedisAddr != "" {
		cardCache, err = cache.NewCache(appCfg.RedisAddr)
		if err != nil {
			slog.Warn("Card cache disabled", "addr", appCfg.RedisAddr, "error", err)
			cardCache = nil
		} else {
			defer cardCache.Close()
		}
	}

	cardRepo := database.NewCardRepository(db)
	builder := content.NewBuilder(cardRules)

	slog.Info("Starting background runner", "workers", appCfg.WorkerCount)
	runner := tasks.NewRunner(builder, cardRepo, cardCache)
	runner.Start()
	defer runner.Stop()

	apiHandler := api.NewHandler(cardRepo, cardCache, builder, runner)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	slog.Info("Card Gen server started successfully")

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	// Runner and cache are stopped via defer
	slog.Info("Card Gen server shutdown complete")
}
