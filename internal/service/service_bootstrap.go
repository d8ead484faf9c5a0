package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mirror-gallery/internal/adapter"
	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
)

type bootstrapService struct {
	mirror adapter.MirrorAPI

	contactImageURL string
	callbackURL     string

	logger *logger.Logger
}

// NewBootstrapService derives the contact image and notification callback
// URLs from the public URL of the deployment.
func NewBootstrapService(mirror adapter.MirrorAPI, cfg config.App, logger *logger.Logger) BootstrapService {
	return &bootstrapService{
		mirror:          mirror,
		contactImageURL: cfg.PublicURL + config.ContactImagePath,
		callbackURL:     cfg.PublicURL + config.NotifyPath,
		logger:          logger,
	}
}

func (b *bootstrapService) Bootstrap(ctx context.Context, uid string, cred adapter.Credential) error {
	log := logger.FromContext(ctx).With().Str("func", "*bootstrapService.Bootstrap").Str("uid", uid).Logger()

	var errs []error

	if _, err := b.mirror.InsertWelcomeItem(ctx, cred); err != nil {
		log.Warn().Err(err).Msg("welcome item was not inserted")
		errs = append(errs, fmt.Errorf("welcome item: %w", err))
	}

	if _, err := b.mirror.InsertContact(ctx, cred, b.contactImageURL); err != nil {
		log.Warn().Err(err).Msg("contact was not inserted")
		errs = append(errs, fmt.Errorf("contact: %w", err))
	}

	if _, err := b.mirror.InsertSubscription(ctx, cred, uid, b.callbackURL); err != nil {
		log.Warn().Err(err).Msg("subscription was not inserted")
		errs = append(errs, fmt.Errorf("subscription: %w", err))
	}

	if len(errs) == 0 {
		log.Info().Msg("user bootstrapped")
	}

	return errors.Join(errs...)
}
