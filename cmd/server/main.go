package main

import (
	"context"

	"github.com/MKhiriev/mirror-gallery/internal/adapter"
	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/events"
	"github.com/MKhiriev/mirror-gallery/internal/handler"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/oauth"
	"github.com/MKhiriev/mirror-gallery/internal/server"
	"github.com/MKhiriev/mirror-gallery/internal/service"
	"github.com/MKhiriev/mirror-gallery/internal/store"
	"github.com/MKhiriev/mirror-gallery/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("mirror-gallery-server")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	provider := oauth.NewProvider(cfg.OAuth, cfg.Adapter.RequestTimeout)

	mirror, err := adapter.NewHTTPMirrorAPI(cfg.Adapter, cfg.OAuth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mirror api client")
	}
	fetcher, err := adapter.NewHTTPAttachmentFetcher(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating attachment fetcher")
	}

	sink, closeSink, err := events.NewSink(cfg.Events, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating event sink")
	}
	defer func() {
		if err := closeSink(); err != nil {
			log.Err(err).Msg("error closing event sink")
		}
	}()

	services, err := service.NewServices(storages, service.Remote{
		Provider: provider,
		Mirror:   mirror,
		Fetcher:  fetcher,
	}, sink, buildInfo, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
