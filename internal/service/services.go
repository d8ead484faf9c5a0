package service

import (
	"github.com/MKhiriev/mirror-gallery/internal/adapter"
	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/events"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/oauth"
	"github.com/MKhiriev/mirror-gallery/internal/store"
	"github.com/MKhiriev/mirror-gallery/models"
)

type Services struct {
	IngestService     IngestService
	CredentialService CredentialService
	BootstrapService  BootstrapService
	AuthService       AuthService
	GalleryService    GalleryService
	AppInfoService    AppInfoService
}

// Remote groups the provider-facing collaborators.
type Remote struct {
	Provider *oauth.Provider
	Mirror   adapter.MirrorAPI
	Fetcher  adapter.AttachmentFetcher
}

func NewServices(storages *store.Storages, remote Remote, sink events.Sink, build models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	credentials := NewCredentialService(storages.UserRepository, remote.Provider, logger)
	bootstrap := NewBootstrapService(remote.Mirror, cfg.App, logger)

	return &Services{
		IngestService: NewIngestService(IngestDeps{
			Credentials: credentials,
			Mirror:      remote.Mirror,
			Fetcher:     remote.Fetcher,
			Content:     storages.ContentStore,
			Posts:       storages.PostRepository,
			Events:      sink,
		}, cfg, logger),
		CredentialService: credentials,
		BootstrapService:  bootstrap,
		AuthService: NewAuthService(AuthDeps{
			Provider:    remote.Provider,
			Mirror:      remote.Mirror,
			Users:       storages.UserRepository,
			Pending:     storages.PendingRegistrationStore,
			Credentials: credentials,
			Bootstrap:   bootstrap,
		}, cfg.App, logger),
		GalleryService: NewGalleryService(storages.UserRepository, storages.PostRepository, storages.ContentLinker, logger),
		AppInfoService: appInfoService,
	}, nil
}
