package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-admin/internal/audit"
	"github.com/BruksfildServices01/barber-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-admin/internal/db"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/logging"
	"github.com/BruksfildServices01/barber-admin/internal/middleware"
	"github.com/BruksfildServices01/barber-admin/internal/routes"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
)

func main() {

	cfg := config.Load()
	logging.Init("barber-admin", cfg.Env, cfg.LogLevel)

	if cfg.AdminEmail == "" {
		log.Warn().Msg("ADMIN_EMAIL not set: every admin operation will be refused")
	}

	db := dbpkg.NewDB(cfg)

	var stale invalidate.Signaler = invalidate.NewMemory()
	if cfg.RedisURL != "" {
		client, err := invalidate.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		defer client.Close()
		stale = invalidate.NewRedisSignaler(client)
	}

	uploader := storage.FromConfig(cfg.S3)

	dispatcher := audit.NewDispatcher(audit.New(db))
	defer dispatcher.Close()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	routes.RegisterRoutes(r, routes.Infra{
		DB:       db,
		Config:   cfg,
		Stale:    stale,
		Uploader: uploader,
		Audit:    dispatcher,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
