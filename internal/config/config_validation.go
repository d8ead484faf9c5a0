// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup. Each failing group is reported with its
// sentinel error so callers can match it with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.NotificationTimeout <= 0 {
		return fmt.Errorf("%w: address and notification timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.App.PublicURL == "" || cfg.App.SessionSignKey == "" {
		return fmt.Errorf("%w: public url and session sign key are required", ErrInvalidAppConfigs)
	}
	switch cfg.App.UnknownContentType {
	case UnknownContentTypeSkip:
	case UnknownContentTypeGeneric:
		if cfg.App.GenericExtension == "" {
			return fmt.Errorf("%w: generic extension is required", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown content type policy %q", ErrInvalidAppConfigs, cfg.App.UnknownContentType)
	}

	if cfg.OAuth.ClientID == "" || cfg.OAuth.ClientSecret == "" || cfg.OAuth.AuthURL == "" || cfg.OAuth.TokenURL == "" {
		return fmt.Errorf("%w: client id, secret, auth and token urls are required", ErrInvalidOAuthConfigs)
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: base url and request timeout are required", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database dsn is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DBDriverPostgres && cfg.Storage.DB.Driver != DBDriverSQLite {
		return fmt.Errorf("%w: unsupported db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	switch cfg.Storage.ContentBackend {
	case ContentBackendFS:
		if cfg.Storage.Files.UserContentDir == "" {
			return fmt.Errorf("%w: user content dir is required", ErrInvalidStorageConfigs)
		}
	case ContentBackendS3:
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 bucket is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported content backend %q", ErrInvalidStorageConfigs, cfg.Storage.ContentBackend)
	}

	if cfg.Workers.AttachmentConcurrency < 1 {
		return fmt.Errorf("%w: attachment concurrency must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
