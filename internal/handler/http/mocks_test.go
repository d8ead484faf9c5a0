package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/service"
	"github.com/MKhiriev/mirror-gallery/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockIngestService struct {
	handleNotificationFn func(ctx context.Context, payload []byte) models.IngestReport
}

func (m *mockIngestService) HandleNotification(ctx context.Context, payload []byte) models.IngestReport {
	return m.handleNotificationFn(ctx, payload)
}

type mockAuthService struct {
	beginLoginFn    func(ctx context.Context) (string, models.Session, error)
	completeLoginFn func(ctx context.Context, session models.Session, state, code string) (models.LoginResult, error)
	registerFn      func(ctx context.Context, session models.Session, registration models.Registration) (models.User, models.Session, error)
	parseSessionFn  func(ctx context.Context, token string) (models.Session, error)
}

func (m *mockAuthService) BeginLogin(ctx context.Context) (string, models.Session, error) {
	return m.beginLoginFn(ctx)
}

func (m *mockAuthService) CompleteLogin(ctx context.Context, session models.Session, state, code string) (models.LoginResult, error) {
	return m.completeLoginFn(ctx, session, state, code)
}

func (m *mockAuthService) Register(ctx context.Context, session models.Session, registration models.Registration) (models.User, models.Session, error) {
	return m.registerFn(ctx, session, registration)
}

func (m *mockAuthService) ParseSession(ctx context.Context, token string) (models.Session, error) {
	return m.parseSessionFn(ctx, token)
}

type mockGalleryService struct {
	recentPostsFn func(ctx context.Context) ([]models.Post, error)
	userPostsFn   func(ctx context.Context, username string) (models.User, []models.Post, error)
	contentURLFn  func(ctx context.Context, name string) (string, error)
}

func (m *mockGalleryService) RecentPosts(ctx context.Context) ([]models.Post, error) {
	return m.recentPostsFn(ctx)
}

func (m *mockGalleryService) UserPosts(ctx context.Context, username string) (models.User, []models.Post, error) {
	return m.userPostsFn(ctx, username)
}

func (m *mockGalleryService) ContentURL(ctx context.Context, name string) (string, error) {
	return m.contentURLFn(ctx, name)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func newHandlerWithServices(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, config.StructuredConfig{}, logger.Nop())
}

// signedSession returns a session whose cookie value is token.
func signedSession(token string, s models.Session) models.Session {
	s.SignedString = token
	return s
}

// sessionParser accepts exactly the given token.
func sessionParser(token string, session models.Session) func(context.Context, string) (models.Session, error) {
	return func(_ context.Context, got string) (models.Session, error) {
		if got != token {
			return models.Session{}, service.ErrSessionInvalid
		}
		return session, nil
	}
}
