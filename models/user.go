package models

import "time"

// User is a gallery member authorized against the identity provider.
// The delegated token tuple lets the service act on the provider's API on
// the user's behalf.
type User struct {
	// UID is the opaque identity key issued by the provider. It is unique,
	// immutable and doubles as the subscription user token.
	UID string `json:"uid"`

	// Username is the unique, human-chosen display handle.
	Username string `json:"username"`

	// AccessToken and RefreshToken are never serialized to clients.
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`

	// ExpiresAt is the access token expiry as unix seconds.
	ExpiresAt int64 `json:"-"`

	// Expires reports whether the access token expires at all.
	Expires bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Tokens returns the stored delegated credential tuple.
func (u User) Tokens() TokenSet {
	t := TokenSet{AccessToken: u.AccessToken, RefreshToken: u.RefreshToken}
	if u.Expires {
		t.Expiry = time.Unix(u.ExpiresAt, 0)
	}
	return t
}

// TokenSet is a rotated delegated credential tuple.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// ApplyTo copies the tuple into u. A zero Expiry means a non-expiring token.
// An empty refresh token keeps the one already stored.
func (t TokenSet) ApplyTo(u *User) {
	u.AccessToken = t.AccessToken
	if t.RefreshToken != "" {
		u.RefreshToken = t.RefreshToken
	}
	u.Expires = !t.Expiry.IsZero()
	u.ExpiresAt = 0
	if u.Expires {
		u.ExpiresAt = t.Expiry.Unix()
	}
}

// Registration is the form a newly authorized user submits to pick a
// username.
type Registration struct {
	Username string `json:"username"`
}
