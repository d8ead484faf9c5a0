package oauth

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/mirror-gallery/models"
	"golang.org/x/oauth2"
)

// Credential is a delegated token tuple that refreshes itself at most once
// over its lifetime. One Credential serves a single notification and is
// safe for concurrent use by that notification's attachment workers.
type Credential struct {
	provider *Provider

	mu         sync.Mutex
	token      *oauth2.Token
	rejected   bool
	refreshed  bool
	refreshErr error
}

// AccessToken returns a usable access token. When the stored token is
// expired or was rejected by the provider, the refresh token is exchanged
// first. Returns ErrAuthExpired when no usable token can be obtained.
func (c *Credential) AccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.Valid() && !c.rejected {
		return c.token.AccessToken, nil
	}

	if err := c.refreshLocked(ctx); err != nil {
		return "", err
	}

	return c.token.AccessToken, nil
}

// Invalidate marks the current access token as rejected by the provider.
// It reports whether a refresh may still be attempted.
func (c *Credential) Invalidate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rejected = true
	return !c.refreshed
}

// Refreshed reports whether a refresh round-trip happened.
func (c *Credential) Refreshed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.refreshed
}

// Tokens returns the current token tuple.
func (c *Credential) Tokens() models.TokenSet {
	c.mu.Lock()
	defer c.mu.Unlock()

	return tokenSetFrom(c.token)
}

// RedirectURL returns the callback URI the credential is bound to.
func (c *Credential) RedirectURL() string {
	return c.provider.RedirectURL()
}

func (c *Credential) refreshLocked(ctx context.Context) error {
	if c.refreshErr != nil {
		return c.refreshErr
	}
	if c.refreshed {
		c.refreshErr = fmt.Errorf("%w: refreshed token was rejected", ErrAuthExpired)
		return c.refreshErr
	}

	c.refreshed = true

	// An empty access token forces the token source to use the refresh grant.
	src := c.provider.conf.TokenSource(c.provider.withClient(ctx), &oauth2.Token{
		RefreshToken: c.token.RefreshToken,
	})
	tok, err := src.Token()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			c.refreshErr = fmt.Errorf("token refresh interrupted: %w", ctxErr)
			return c.refreshErr
		}
		c.refreshErr = fmt.Errorf("%w: %w", ErrAuthExpired, err)
		return c.refreshErr
	}

	c.token = tok
	c.rejected = false
	return nil
}
