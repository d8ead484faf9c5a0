package http

import (
	"strings"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/service"
)

type Handler struct {
	services *service.Services

	// userContentDir is served under /usercontent/. Empty when attachments
	// live in object storage.
	userContentDir string
	staticDir      string
	secureCookies  bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:      services,
		staticDir:     cfg.Storage.Files.StaticDir,
		secureCookies: strings.HasPrefix(cfg.App.PublicURL, "https://"),
		logger:        logger,
	}
	if cfg.Storage.ContentBackend == config.ContentBackendFS {
		h.userContentDir = cfg.Storage.Files.UserContentDir
	}

	logger.Info().Msg("http handler created")
	return h
}
