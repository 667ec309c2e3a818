// @title Board Web
// @version 1.0
// @description Server-rendered board and gallery pages over the board API.
// @host localhost:3000
// @BasePath /

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"board-web/bootstrap"
	"board-web/config"
	"board-web/database"
	"board-web/internal/helpers"
	"board-web/internal/inflight"
	"board-web/internal/middleware"
	"board-web/internal/repository"
	"board-web/internal/routes"
	"board-web/internal/services"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("board-web failed")
	}
}

// run owns every resource it opens so deferred cleanup runs on all exits.
func run() error {
	// Load configuration
	cfg := config.LoadConfig()
	config.SetupLogger(cfg.LogLevel)

	if cfg.FormSecret == "" {
		return errors.New("FORM_SECRET is required")
	}

	// Category catalog, reloaded when the file changes
	catalog, err := config.LoadCatalog(cfg.CategoryFile)
	if err != nil {
		return fmt.Errorf("load categories from %s: %w", cfg.CategoryFile, err)
	}
	if stop, err := catalog.Watch(cfg.CategoryFile); err != nil {
		log.Warn().Err(err).Msg("category reload disabled")
	} else {
		defer stop()
	}

	// Tracing and metrics for board API calls
	tracer, closeTracer, err := helpers.InitTracer("board-web", "localhost:"+cfg.Port, cfg.ZipkinURL)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer closeTracer()
	httpClient, err := helpers.NewTracedClient(tracer)
	if err != nil {
		return fmt.Errorf("init http client: %w", err)
	}
	metrics := helpers.NewMetrics()

	drafts, closeDrafts, err := openDraftStore(cfg)
	if err != nil {
		return fmt.Errorf("open %q draft store: %w", cfg.DraftStore, err)
	}
	defer closeDrafts()

	client := services.NewBoardClient(cfg.APIURL, cfg.APITimeout, httpClient, metrics)
	app := routes.NewApp(routes.Services{
		List:     services.NewListService(client, catalog, cfg.PaginationWindow, cfg.Location),
		Detail:   services.NewDetailService(client, drafts, catalog, cfg.Location),
		Tokens:   middleware.NewFormTokens(cfg.FormSecret, cfg.FormTokenTTL),
		Inflight: inflight.NewRegistry(),
		Metrics:  metrics,
	}, routes.AppOptions{
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
		PublicDir:   "./public",
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	// RUN SERVER
	log.Info().Str("port", cfg.Port).Str("api", cfg.APIURL).Str("drafts", cfg.DraftStore).Msg("board-web listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// openDraftStore connects the backend named by DRAFT_STORE. The returned
// func releases it.
func openDraftStore(cfg config.Config) (repository.DraftStore, func(), error) {
	switch cfg.DraftStore {
	case "", "memory":
		store := repository.NewMemoryDraftStore(cfg.DraftTTL)
		purger, err := store.StartPurger("@every 1m")
		if err != nil {
			return nil, nil, err
		}
		return store, func() { purger.Stop() }, nil

	case "mongo":
		client, db, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		// Drafts expire on their own once expires_at passes
		if err := bootstrap.EnsureDraftIndexes(db); err != nil {
			database.DisconnectMongo(client)
			return nil, nil, fmt.Errorf("ensure indexes failed: %w", err)
		}
		return repository.NewMongoDraftStore(db, cfg.DraftTTL), func() { database.DisconnectMongo(client) }, nil

	case "redis":
		rdb, err := database.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisDraftStore(rdb, cfg.DraftTTL), func() { _ = rdb.Close() }, nil

	case "memcache":
		mc, err := database.ConnectMemcache(cfg.MemURL)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMemcacheDraftStore(mc, cfg.DraftTTL), func() { _ = mc.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown draft store %q", cfg.DraftStore)
}
