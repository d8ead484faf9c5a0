package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mirror-gallery/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSession is returned when a session token fails verification.
var ErrInvalidSession = errors.New("invalid session token")

// SignSession stamps the registered claims onto session and signs it with
// HMAC-SHA256.
//
// The following standard claims are set:
//   - Issuer    (iss): identifies the service that issued the session
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus duration
//
// The subject and the custom claims are taken from session unchanged.
// All parameters are required.
//
// Example usage:
//
//	signed, err := utils.SignSession(models.Session{OAuthState: state}, "mirror-gallery", time.Hour, "secret")
func SignSession(session models.Session, issuer string, duration time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || duration <= 0 || signKey == "" {
		return models.Session{}, errors.New("invalid params for signing session")
	}

	now := time.Now()
	session.Issuer = issuer
	session.IssuedAt = jwt.NewNumericDate(now)
	session.ExpiresAt = jwt.NewNumericDate(now.Add(duration))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &session).SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session: %w", err)
	}
	session.SignedString = signed

	return session, nil
}

// ParseSession verifies the signature, issuer and expiry of tokenString and
// returns its claims. Tokens signed with anything but HS256 are rejected.
func ParseSession(tokenString, signKey, issuer string) (models.Session, error) {
	var session models.Session
	_, err := jwt.ParseWithClaims(tokenString, &session, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	session.SignedString = tokenString
	return session, nil
}
