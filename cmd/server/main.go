package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hmiyata/shindan/internal/api"
	"github.com/hmiyata/shindan/internal/config"
	"github.com/hmiyata/shindan/internal/db"
	"github.com/hmiyata/shindan/internal/logger"
	"github.com/hmiyata/shindan/internal/registration"
	sqliterepo "github.com/hmiyata/shindan/internal/repository/sqlite"
	"github.com/hmiyata/shindan/internal/session"
	"github.com/hmiyata/shindan/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Shindan Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("register_url=%s", cfg.RegisterURL)
	log.Debug("forward_worker_count=%d", cfg.ForwardWorkerCount)
	log.Debug("forward_queue_size=%d", cfg.ForwardQueueSize)
	log.Debug("attempt_ttl_minutes=%d", cfg.AttemptTTLMinutes)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	leadRepo := sqliterepo.NewLeadRepository(database.DB)

	// Attempt sessions live in memory and expire after the TTL.
	sessions := session.NewStore(time.Duration(cfg.AttemptTTLMinutes) * time.Minute)

	forwardPool := worker.NewPool(cfg.ForwardWorkerCount, cfg.ForwardQueueSize)

	var forwarder registration.Forwarder
	if cfg.RegisterURL != "" {
		forwarder = registration.NewClient(cfg.RegisterURL)
	} else {
		log.Warn("MA_REGISTER_URL not set, leads will be stored but not forwarded")
		forwarder = registration.NopForwarder{}
	}
	registrationService := registration.NewService(leadRepo, forwarder, forwardPool)

	srv := &api.Server{
		DB:           database,
		Sessions:     sessions,
		Leads:        leadRepo,
		Registration: registrationService,
	}

	ctx, cancel := context.WithCancel(context.Background())
	forwardPool.Start(ctx)
	go sessions.Run(ctx, time.Minute)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping session sweeper and workers")
	cancel()
	forwardPool.Stop()

	log.Info("===========================================")
	log.Info("Shindan Server Stopped")
	log.Info("===========================================")
}
