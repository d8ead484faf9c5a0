package http

import (
	"testing"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.StructuredConfig{}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_FileSettings(t *testing.T) {
	tests := []struct {
		name           string
		cfg            config.StructuredConfig
		wantContentDir string
		wantSecure     bool
	}{
		{
			name: "filesystem backend over https",
			cfg: config.StructuredConfig{
				App: config.App{PublicURL: "https://gallery.example.com"},
				Storage: config.Storage{
					ContentBackend: config.ContentBackendFS,
					Files:          config.Files{UserContentDir: "/srv/usercontent", StaticDir: "/srv/static"},
				},
			},
			wantContentDir: "/srv/usercontent",
			wantSecure:     true,
		},
		{
			name: "object storage backend over plain http",
			cfg: config.StructuredConfig{
				App: config.App{PublicURL: "http://localhost:8080"},
				Storage: config.Storage{
					ContentBackend: config.ContentBackendS3,
					Files:          config.Files{UserContentDir: "/srv/usercontent", StaticDir: "/srv/static"},
				},
			},
			wantContentDir: "",
			wantSecure:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, tt.cfg, logger.Nop())

			assert.Equal(t, tt.wantContentDir, h.userContentDir)
			assert.Equal(t, "/srv/static", h.staticDir)
			assert.Equal(t, tt.wantSecure, h.secureCookies)
		})
	}
}
