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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/config"
	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/mqtt"
	"github.com/Lumen-Signage/lumen/internal/redis"
	"github.com/Lumen-Signage/lumen/internal/webhook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()

	if err := db.RunMigrations(conn, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	store := db.NewStore(conn)
	cache := redis.New(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	defer cache.Close()

	// MQTT is optional infrastructure: without it players fall back to
	// polling and everything still works.
	notifier, err := mqtt.Connect(cfg.MQTTBrokerURL, "lumen-backend")
	if err != nil {
		log.Warn().Err(err).Msg("MQTT unavailable, players will rely on polling")
		notifier = nil
	}
	defer notifier.Close()

	hooks := webhook.NewDispatcher(store, 4)
	defer hooks.Close()

	storageSystem := InitStorage(cfg)

	router := gin.New()
	router.Use(gin.Recovery())
	RegisterRoutes(router, cfg, store, cache, notifier, hooks, storageSystem)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
	}

	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
