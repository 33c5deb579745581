package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/handler"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/metrics"
	"github.com/MKhiriev/go-catalog-api/internal/server"
	"github.com/MKhiriev/go-catalog-api/internal/service"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/internal/workers"
	"github.com/MKhiriev/go-catalog-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	ctx := context.Background()
	log := logger.NewLogger("go-catalog-api")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	m := metrics.New()

	caches, err := service.NewCaches(cfg.Cache, m.Registerer())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating caches")
	}

	services, err := service.NewServices(store.NewRepositories(db, log), caches, cfg.App, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	janitor := workers.NewCacheJanitor(cfg.Cache.CleanupInterval, map[string]workers.Purger{
		"categories":  caches.Categories,
		"departments": caches.Departments,
		"cities":      caches.Cities,
	}, log)

	srv, err := server.NewServer(handlers, workers.NewWorkers(janitor), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
