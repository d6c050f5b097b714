package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httpadapter "leadfair/internal/adapters/http"
	"leadfair/internal/adapters/memory"
	pg "leadfair/internal/adapters/postgres"
	"leadfair/internal/config"
	"leadfair/internal/ports"
	"leadfair/internal/services/conversation"
	"leadfair/internal/services/leads"
	"leadfair/internal/services/reports"
	scansvc "leadfair/internal/services/scanner"
	"leadfair/internal/workers/scanrunner"
)

func main() {
	cfg, err := config.Load()

	log := newLogger(cfg.Env)
	defer log.Sync()
	if err != nil {
		log.Warn("configuration incomplete", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Snapshots go to Postgres when a database is configured; otherwise an
	// in-process store keeps single-node deployments working.
	var snapshots ports.SnapshotRepository
	if cfg.DatabaseURL != "" {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("db connect error", zap.Error(err))
		}
		defer db.Close()
		snapshots = db
		log.Info("snapshot store: postgres")
	} else {
		snapshots = memory.NewSnapshotStore()
		log.Info("snapshot store: memory")
	}

	scanner := scansvc.New(cfg.PageSpeedAPIKey, log)
	runner := scanrunner.New(scanner, cfg.ScanConcurrency, log)
	llm := reports.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	reporter := reports.New(llm, log)
	relay := leads.NewRelay(cfg.FormRelayURL, cfg.RelayEmail, log)
	sessions := conversation.NewManager(runner, reporter, relay, log)
	defer sessions.Stop()

	srv := httpadapter.New(scanner, reporter, sessions, snapshots, log)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	log.Info("listening", zap.String("addr", cfg.ListenAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown incomplete", zap.Error(err))
		}
	case err := <-errCh:
		log.Fatal("server error", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		log, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return log
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return log
}
