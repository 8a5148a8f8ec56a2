// Command server runs the contact book REST API.
//
// Startup order: load .env, parse configuration, configure logging, set up
// OpenTelemetry tracing, open the SQLite store (when configured), register
// routes, then serve until SIGINT/SIGTERM triggers a graceful shutdown.
//
// A missing or unusable DB_PATH is not fatal. The server still comes up and
// every data endpoint answers with the "Database not configured" error, so
// the condition is visible to clients and operators alike.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	_ "github.com/contactbook/go-contacts-backend/docs"
	"github.com/contactbook/go-contacts-backend/internal/config"
	httpapi "github.com/contactbook/go-contacts-backend/internal/http"
	"github.com/contactbook/go-contacts-backend/internal/observability"
	"github.com/contactbook/go-contacts-backend/internal/repo"
	"github.com/contactbook/go-contacts-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// @title        Contact Book API
// @version      1.0
// @description  REST API for managing contacts.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	var db *gorm.DB
	if cfg.DBPath == "" {
		log.Warn().Msg("DB_PATH not set; serving with an unconfigured datastore")
	} else {
		db, err = repo.Open(cfg.DBPath, cfg.OTEL.Enabled)
		if err != nil {
			log.Error().Err(err).Str("db_path", cfg.DBPath).
				Msg("open database failed; serving with an unconfigured datastore")
			db = nil
		} else if err := repo.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrate failed")
		}
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
