package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yuda85/family-ops-sub001/internal/config"
	"github.com/yuda85/family-ops-sub001/internal/infra"
	"github.com/yuda85/family-ops-sub001/internal/realtime"
	"github.com/yuda85/family-ops-sub001/internal/router"
	"github.com/yuda85/family-ops-sub001/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Realtime fan-out: mutations publish through the bridge into Redis
	// pub/sub; the bridge subscriber feeds this instance's WebSocket hub.
	hub := realtime.NewHub()
	bridge := realtime.NewBridge(rdb, hub)
	go bridge.Run(ctx)

	dispatcher := worker.NewDispatcher(rdb)

	r, archiveWorker := router.New(router.Deps{
		Cfg:        cfg,
		DB:         db,
		RDB:        rdb,
		Hub:        hub,
		Bridge:     bridge,
		Dispatcher: dispatcher,
	})

	// Async pattern folding runs off the request path.
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, archiveWorker)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("shopping backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
