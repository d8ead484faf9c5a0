package config

import (
	"strings"
	"time"
)

const defaultEnvFile = ".env"

// Public paths registered with the provider.
const (
	CallbackPath     = "/auth/provider/callback"
	NotifyPath       = "/provider/notify"
	ContactImagePath = "/contact.png"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:      "mirror-gallery",
			SessionDuration:    24 * time.Hour,
			UnknownContentType: UnknownContentTypeSkip,
			GenericExtension:   "bin",
			Version:            "dev",
		},
		OAuth: OAuth{
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/glass.timeline",
			},
		},
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				Driver: DBDriverPostgres,
			},
			Files: Files{
				UserContentDir: "public/usercontent",
				StaticDir:      "public",
			},
			S3: S3{
				URLExpiry: 15 * time.Minute,
			},
			ContentBackend: ContentBackendFS,
		},
		Server: Server{
			RequestTimeout:      30 * time.Second,
			NotificationTimeout: time.Minute,
			ShutdownTimeout:     10 * time.Second,
		},
		Events: Events{
			Queue: "gallery.ingest",
		},
		Workers: Workers{
			AttachmentConcurrency: 4,
		},
	}
}

// derive fills fields computed from other fields.
func (cfg *StructuredConfig) derive() {
	cfg.App.PublicURL = strings.TrimRight(cfg.App.PublicURL, "/")
	if cfg.OAuth.RedirectURL == "" && cfg.App.PublicURL != "" {
		cfg.OAuth.RedirectURL = cfg.App.PublicURL + CallbackPath
	}
}
