package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/mirror-gallery/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignSession_Success(t *testing.T) {
	s := models.Session{OAuthState: "state-1"}
	s.Subject = "uid-1"

	signed, err := SignSession(s, "gallery", time.Hour, "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, signed.SignedString)
	assert.Equal(t, "gallery", signed.Issuer)
	assert.Equal(t, "uid-1", signed.UID())
	assert.Equal(t, "state-1", signed.OAuthState)
	require.NotNil(t, signed.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), signed.ExpiresAt.Time, time.Minute)
}

func TestSignSession_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SignSession(models.Session{}, tt.issuer, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestParseSession_RoundTrip(t *testing.T) {
	s := models.Session{PendingKey: "pk-1"}
	signed, err := SignSession(s, "gallery", time.Minute, "secret")
	require.NoError(t, err)

	parsed, err := ParseSession(signed.String(), "secret", "gallery")

	require.NoError(t, err)
	assert.Equal(t, "pk-1", parsed.PendingKey)
	assert.Empty(t, parsed.UID())
	assert.Equal(t, signed.SignedString, parsed.SignedString)
}

func TestParseSession_Rejects(t *testing.T) {
	valid, err := SignSession(models.Session{}, "gallery", time.Minute, "secret")
	require.NoError(t, err)

	expired := models.Session{}
	expired.Issuer = "gallery"
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	expiredStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &expired).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry := models.Session{}
	noExpiry.Issuer = "gallery"
	noExpiryStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &noExpiry).SignedString([]byte("secret"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &models.Session{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "gallery",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "gallery"},
		{"wrong issuer", valid.SignedString, "secret", "someone-else"},
		{"expired", expiredStr, "secret", "gallery"},
		{"missing expiry", noExpiryStr, "secret", "gallery"},
		{"unexpected algorithm", hs512, "secret", "gallery"},
		{"garbage", "not.a.jwt", "secret", "gallery"},
		{"empty", "", "secret", "gallery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSession(tt.token, tt.key, tt.issuer)
			assert.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}
