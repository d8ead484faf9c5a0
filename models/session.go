package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Session is the claim set of the signed session cookie.
//
// The subject ("sub") holds the logged-in user's uid and is empty for
// anonymous visitors. OAuthState carries the anti-forgery state of an
// authorization in progress; PendingKey points at the server-held pending
// registration record.
type Session struct {
	jwt.RegisteredClaims

	OAuthState string `json:"st,omitempty"`
	PendingKey string `json:"pk,omitempty"`

	// SignedString is the compact JWS form, set after signing or parsing.
	SignedString string `json:"-"`
}

// NewUserSession returns the claim set of a logged-in user.
func NewUserSession(uid string) Session {
	var s Session
	s.Subject = uid
	return s
}

// UID returns the logged-in user's uid or an empty string.
func (s *Session) UID() string {
	return s.Subject
}

// String returns the compact JWS serialization of the session.
func (s *Session) String() string {
	return s.SignedString
}

// PendingRegistration is the identity and credential obtained during an
// OAuth callback for a uid that has no account yet. It is consumed exactly
// once by the registration form.
type PendingRegistration struct {
	UID    string   `json:"uid"`
	Email  string   `json:"email,omitempty"`
	Name   string   `json:"name,omitempty"`
	Tokens TokenSet `json:"tokens"`
}

// LoginResult is the outcome of an OAuth callback. A known uid is logged in
// right away; an unknown one gets a session pointing at its pending
// registration.
type LoginResult struct {
	Session           Session
	User              User
	NeedsRegistration bool
}
