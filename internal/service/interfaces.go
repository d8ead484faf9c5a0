package service

import (
	"context"

	"github.com/MKhiriev/mirror-gallery/internal/adapter"
	"github.com/MKhiriev/mirror-gallery/internal/oauth"
	"github.com/MKhiriev/mirror-gallery/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IngestService turns push notifications into gallery posts.
type IngestService interface {
	// HandleNotification processes one raw webhook body to completion and
	// reports the outcome. It never fails: every problem is reported as an
	// event and reflected in the returned report.
	HandleNotification(ctx context.Context, payload []byte) models.IngestReport
}

// CredentialService builds delegated credentials for stored users.
type CredentialService interface {
	// Load returns a credential for uid or ErrUserNotFound.
	Load(ctx context.Context, uid string) (*oauth.Credential, error)

	// RefreshIfNeeded makes sure cred holds a usable access token.
	// Returns oauth.ErrAuthExpired when the refresh token was rejected.
	RefreshIfNeeded(ctx context.Context, cred *oauth.Credential) (*oauth.Credential, error)

	// FromTokens wraps a freshly issued token tuple.
	FromTokens(tokens models.TokenSet) *oauth.Credential
}

// BootstrapService prepares a new user's wearable for sharing to the gallery.
type BootstrapService interface {
	// Bootstrap inserts the welcome item, the gallery contact and the
	// timeline subscription. Every step is attempted; failures are joined.
	Bootstrap(ctx context.Context, uid string, cred adapter.Credential) error
}

type AuthService interface {
	BeginLogin(ctx context.Context) (string, models.Session, error)
	CompleteLogin(ctx context.Context, session models.Session, state, code string) (models.LoginResult, error)
	Register(ctx context.Context, session models.Session, registration models.Registration) (models.User, models.Session, error)
	ParseSession(ctx context.Context, token string) (models.Session, error)
}

type GalleryService interface {
	RecentPosts(ctx context.Context) ([]models.Post, error)
	UserPosts(ctx context.Context, username string) (models.User, []models.Post, error)

	// ContentURL links a stored attachment kept outside the static root.
	ContentURL(ctx context.Context, name string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
