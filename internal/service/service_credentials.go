package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/oauth"
	"github.com/MKhiriev/mirror-gallery/internal/store"
	"github.com/MKhiriev/mirror-gallery/models"
)

type credentialService struct {
	userRepository store.UserRepository
	provider       *oauth.Provider

	logger *logger.Logger
}

// NewCredentialService builds credentials bound to provider from the tokens
// stored in userRepository. Refreshed tokens live only as long as the
// credential; the login callback is what writes tokens back.
func NewCredentialService(userRepository store.UserRepository, provider *oauth.Provider, logger *logger.Logger) CredentialService {
	return &credentialService{
		userRepository: userRepository,
		provider:       provider,
		logger:         logger,
	}
}

func (c *credentialService) Load(ctx context.Context, uid string) (*oauth.Credential, error) {
	log := logger.FromContext(ctx)

	lookup, err := c.userRepository.LookupUser(ctx, uid)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Load").Str("uid", uid).Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if !lookup.Found {
		return nil, fmt.Errorf("%w: uid %q", ErrUserNotFound, uid)
	}

	return c.provider.Credential(lookup.User.Tokens()), nil
}

func (c *credentialService) RefreshIfNeeded(ctx context.Context, cred *oauth.Credential) (*oauth.Credential, error) {
	if _, err := cred.AccessToken(ctx); err != nil {
		return nil, err
	}

	if cred.Refreshed() {
		logger.FromContext(ctx).Debug().Str("func", "*credentialService.RefreshIfNeeded").Msg("access token refreshed")
	}

	return cred, nil
}

func (c *credentialService) FromTokens(tokens models.TokenSet) *oauth.Credential {
	return c.provider.Credential(tokens)
}
