package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/mirror-gallery/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists gallery members keyed by the provider uid.
type UserRepository interface {
	// CreateUser inserts a new user. Returns ErrUsernameAlreadyExists or
	// ErrUIDAlreadyExists on a unique conflict.
	CreateUser(ctx context.Context, user models.User) error

	// LookupUser reports whether a user with uid exists. Absence is not an error.
	LookupUser(ctx context.Context, uid string) (UserLookup, error)

	// FindUserByUsername returns ErrNoUserWasFound for an unknown username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateTokens rotates the stored delegated credential of uid.
	UpdateTokens(ctx context.Context, uid string, tokens models.TokenSet) error
}

// PostRepository persists materialized attachments.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListRecent(ctx context.Context, limit uint64) ([]models.Post, error)
	ListByUser(ctx context.Context, uid string) ([]models.Post, error)
}

// ContentStore writes attachment bodies to durable storage.
type ContentStore interface {
	// Save writes body under "<attachmentID>.<ext>", replacing any existing
	// object, and returns that relative path. Failures wrap ErrStorageWrite.
	Save(ctx context.Context, attachmentID, ext string, body io.Reader) (string, error)
}

// ContentLinker resolves a path returned by [ContentStore.Save] to a URL a
// browser can fetch directly. Only backends whose objects are not served from
// the local static root implement it.
type ContentLinker interface {
	ContentURL(ctx context.Context, name string) (string, error)
}

// PendingRegistrationStore holds OAuth callback results for uids that have
// no account yet until the registration form consumes them.
type PendingRegistrationStore interface {
	Put(ctx context.Context, key string, rec models.PendingRegistration, ttl time.Duration) error

	// Take returns and removes the record. The second result is false when
	// the key is unknown, expired or already taken.
	Take(ctx context.Context, key string) (models.PendingRegistration, bool, error)
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
