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

	"github.com/dgavara/fightwire/app/api"
	"github.com/dgavara/fightwire/app/cfg"
	"github.com/dgavara/fightwire/app/database"
	"github.com/dgavara/fightwire/app/fetch"
	"github.com/dgavara/fightwire/app/pipeline"
	"github.com/dgavara/fightwire/app/scheduler"
	"github.com/dgavara/fightwire/app/sources"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
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
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting fightwire", "version", appCfg.Version)

	registry, err := sources.Load(appCfg.SourcesFile)
	if err != nil {
		slog.Error("Failed to load sources configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Sources loaded", "count", len(registry.Sources()))

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	articleRepo := database.NewArticleRepository(db)
	runRepo := database.NewRunRepository(db)

	fetcher := fetch.NewFetcher(
		time.Duration(appCfg.Timeout)*time.Second,
		appCfg.UserAgent,
		appCfg.AcceptLanguage,
	)

	runner := pipeline.NewRunner(registry, fetcher, fetch.NewExtractor(), articleRepo, runRepo, pipeline.Options{
		OutDir:         appCfg.OutDir,
		SiteDir:        appCfg.SiteDir,
		PerSourceLimit: appCfg.PerSourceLimit,
		MinChars:       appCfg.MinChars,
		RecentDays:     appCfg.RecentDays,
		RecentLimit:    appCfg.RecentLimit,
	})

	if !appCfg.Serve {
		runOnce(runner, appCfg)
		return
	}

	serve(runner, articleRepo, runRepo, appCfg)
}

// runOnce executes a single pipeline pass and prints the run summary, the
// one-shot mode meant for cron.
func runOnce(runner *pipeline.Runner, appCfg *cfg.Cfg) {
	stats, err := runner.Run(context.Background())
	if err != nil {
		slog.Error("Pipeline run failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Candidates: %d | New: %d | Updated: %d | Skipped(existing URL): %d | Extract OK: %d\n",
		stats.TotalCandidates, stats.StoredNew, stats.StoredUpdated, stats.SkippedExisting, stats.ExtractOK)
	fmt.Printf("Database: %s\n", appCfg.DBPath)
	fmt.Printf("Site: %s\n", appCfg.SiteDir)
}

// serve runs an initial pipeline pass, then keeps the site fresh on an
// interval while the HTTP server exposes it.
func serve(runner *pipeline.Runner, articleRepo database.ArticleRepository,
	runRepo database.RunRepository, appCfg *cfg.Cfg) {
	if _, err := runner.Run(context.Background()); err != nil {
		slog.Error("Initial pipeline run failed", "error", err)
		os.Exit(1)
	}

	sched := scheduler.NewScheduler(runner, time.Duration(appCfg.SchedulerInterval)*time.Second)
	sched.Start()
	defer sched.Stop()

	handler := api.NewHandler(articleRepo, runRepo, sched, appCfg.SiteDir, appCfg.Version)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Scheduler is stopped via defer
	slog.Info("Shutdown complete")
}
