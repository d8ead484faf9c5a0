// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the provider's mirror API on behalf of a user.
//
// [MirrorAPI] covers the JSON endpoints (timeline, contacts, subscriptions,
// userinfo); [AttachmentFetcher] streams attachment bodies. Both authenticate
// with a [Credential] and retry exactly once after the provider rejects the
// access token.
//
// Non-2xx responses are returned as [*RemoteAPIError], which matches
// [ErrRemoteAPI] with [errors.Is]. Status-specific sentinels such as
// [ErrUnauthorized] and [ErrNotFound] are reachable through Unwrap.
package adapter

import (
	"context"

	"github.com/MKhiriev/mirror-gallery/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Credential is the delegated credential outbound calls authenticate with.
type Credential interface {
	// AccessToken returns a usable access token, refreshing it if needed.
	AccessToken(ctx context.Context) (string, error)

	// Invalidate records that the provider rejected the current token and
	// reports whether a refresh may still be attempted.
	Invalidate() bool
}

// MirrorAPI is the typed client of the provider's mirror API.
type MirrorAPI interface {
	// InsertWelcomeItem posts the welcome card to the user's timeline.
	InsertWelcomeItem(ctx context.Context, cred Credential) (models.TimelineItem, error)

	// InsertContact registers the gallery as a sharing target with the given
	// contact image.
	InsertContact(ctx context.Context, cred Credential, imageURL string) (models.Contact, error)

	// InsertSubscription subscribes callbackURL to timeline notifications
	// tagged with userToken.
	InsertSubscription(ctx context.Context, cred Credential, userToken, callbackURL string) (models.Subscription, error)

	// FetchTimelineItem returns the item with its attachment descriptors.
	FetchTimelineItem(ctx context.Context, cred Credential, itemID string) (models.TimelineItem, error)

	// GetUserInfo returns the identity the credential belongs to.
	GetUserInfo(ctx context.Context, cred Credential) (models.UserInfo, error)
}

// AttachmentFetcher downloads attachment bodies.
type AttachmentFetcher interface {
	// Download streams contentURL. The caller must close the returned body.
	// Failures wrap [ErrDownload].
	Download(ctx context.Context, cred Credential, contentURL string) (*models.Download, error)
}
