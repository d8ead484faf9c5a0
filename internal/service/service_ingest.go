// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mirror-gallery/internal/adapter"
	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/events"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/oauth"
	"github.com/MKhiriev/mirror-gallery/internal/store"
	"github.com/MKhiriev/mirror-gallery/internal/validators"
	"github.com/MKhiriev/mirror-gallery/internal/workers"
	"github.com/MKhiriev/mirror-gallery/models"
)

// IngestDeps are the collaborators of the ingestion pipeline.
type IngestDeps struct {
	Credentials CredentialService
	Mirror      adapter.MirrorAPI
	Fetcher     adapter.AttachmentFetcher
	Content     store.ContentStore
	Posts       store.PostRepository
	Events      events.Sink
}

type ingestService struct {
	credentials CredentialService
	mirror      adapter.MirrorAPI
	fetcher     adapter.AttachmentFetcher
	content     store.ContentStore
	posts       store.PostRepository
	events      events.Sink
	validator   validators.Validator

	unknownContentType string
	genericExtension   string
	concurrency        int
	timeout            time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewIngestService(deps IngestDeps, cfg config.StructuredConfig, logger *logger.Logger) IngestService {
	return &ingestService{
		credentials:        deps.Credentials,
		mirror:             deps.Mirror,
		fetcher:            deps.Fetcher,
		content:            deps.Content,
		posts:              deps.Posts,
		events:             deps.Events,
		validator:          validators.NewRequestValidator(),
		unknownContentType: cfg.App.UnknownContentType,
		genericExtension:   cfg.App.GenericExtension,
		concurrency:        cfg.Workers.AttachmentConcurrency,
		timeout:            cfg.Server.NotificationTimeout,
		now:                time.Now,
		logger:             logger,
	}
}

// HandleNotification runs the pipeline detached from the caller's
// cancellation, bounded by the notification timeout.
func (s *ingestService) HandleNotification(ctx context.Context, payload []byte) models.IngestReport {
	ctx = s.logger.EnsureContext(context.WithoutCancel(ctx))
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	report := models.IngestReport{State: models.StateReceived}

	n, err := s.parseNotification(ctx, payload)
	if err != nil {
		return s.drop(ctx, report, models.IngestEvent{
			Kind:      models.EventValidationFailed,
			UserToken: n.UserToken,
			ItemID:    n.ItemID,
		}, err)
	}

	return s.ingest(ctx, n)
}

func (s *ingestService) parseNotification(ctx context.Context, payload []byte) (models.Notification, error) {
	var n models.Notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return models.Notification{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := s.validator.Validate(ctx, n); err != nil {
		return n, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return n, nil
}

func (s *ingestService) ingest(ctx context.Context, n models.Notification) models.IngestReport {
	log := logger.FromContext(ctx).With().
		Str("user_token", n.UserToken).
		Str("item_id", n.ItemID).
		Logger()
	ctx = log.WithContext(ctx)

	report := models.IngestReport{State: models.StateValidated}
	base := models.IngestEvent{UserToken: n.UserToken, ItemID: n.ItemID}

	cred, err := s.credentials.Load(ctx, n.UserToken)
	if err != nil {
		kind := models.EventUserLookupFailed
		if errors.Is(err, ErrUserNotFound) {
			kind = models.EventUserNotFound
		}
		return s.drop(ctx, report, withKind(base, kind), err)
	}

	cred, err = s.credentials.RefreshIfNeeded(ctx, cred)
	if err != nil {
		kind := models.EventRemoteAPIError
		if errors.Is(err, oauth.ErrAuthExpired) {
			kind = models.EventAuthExpired
		}
		return s.drop(ctx, report, withKind(base, kind), err)
	}
	report.State = models.StateAuthenticated

	item, err := s.mirror.FetchTimelineItem(ctx, cred, n.ItemID)
	if err != nil {
		kind := models.EventRemoteAPIError
		if errors.Is(err, oauth.ErrAuthExpired) {
			kind = models.EventAuthExpired
		}
		return s.drop(ctx, report, withKind(base, kind), err)
	}
	report.State = models.StateFetched

	outcomes := make([]attachmentOutcome, len(item.Attachments))
	pool := workers.NewWorkers(s.concurrency)
	for i, att := range item.Attachments {
		pool.Add(workers.WorkerFunc(func(ctx context.Context) {
			outcomes[i] = s.processAttachment(ctx, cred, n, item, att)
		}))
	}
	if err = pool.Run(ctx); err != nil {
		log.Error().Err(err).Msg("attachment worker crashed")
	}

	for _, o := range outcomes {
		switch {
		case o.post != nil:
			report.Created = append(report.Created, *o.post)
		case o.skipped:
			report.Skipped++
		default:
			report.Failed++
		}
	}

	report.State = models.StateDone
	done := withKind(base, models.EventNotificationDone)
	done.At = s.now()
	s.events.Emit(ctx, done)

	log.Info().
		Int("attachments", len(item.Attachments)).
		Int("created", len(report.Created)).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Msg("notification processed")

	return report
}

// attachmentOutcome is the result of one attachment pipeline. A zero value
// counts as a failure.
type attachmentOutcome struct {
	post    *models.Post
	skipped bool
}

// processAttachment resolves the extension before downloading so unknown
// types cost no transfer.
func (s *ingestService) processAttachment(ctx context.Context, cred adapter.Credential, n models.Notification, item models.TimelineItem, att models.Attachment) attachmentOutcome {
	log := logger.FromContext(ctx).With().Str("attachment_id", att.ID).Str("content_type", att.ContentType).Logger()

	ev := models.IngestEvent{
		UserToken:    n.UserToken,
		ItemID:       n.ItemID,
		AttachmentID: att.ID,
		ContentType:  att.ContentType,
	}

	ext, err := store.ExtensionFor(att.ContentType)
	if err != nil {
		if s.unknownContentType != config.UnknownContentTypeGeneric {
			s.emitFailure(ctx, withKind(ev, models.EventUnknownContentType), err)
			return attachmentOutcome{skipped: true}
		}
		log.Info().Str("extension", s.genericExtension).Msg("storing attachment of unknown type under generic extension")
		ext = s.genericExtension
	}

	dl, err := s.fetcher.Download(ctx, cred, att.ContentURL)
	if err != nil {
		s.emitFailure(ctx, withKind(ev, models.EventDownloadFailed), err)
		return attachmentOutcome{}
	}
	defer dl.Body.Close()

	path, err := s.content.Save(ctx, att.ID, ext, dl.Body)
	if err != nil {
		kind := models.EventStorageWriteFailed
		if errors.Is(err, adapter.ErrDownload) {
			kind = models.EventDownloadFailed
		}
		s.emitFailure(ctx, withKind(ev, kind), err)
		return attachmentOutcome{}
	}

	created := item.Created
	if created.IsZero() {
		created = s.now()
	}

	post, err := s.posts.CreatePost(ctx, models.Post{
		AttachmentID: att.ID,
		TimelineID:   item.ID,
		ContentType:  att.ContentType,
		ContentPath:  path,
		CreatedAt:    created,
		UserUID:      n.UserToken,
	})
	if err != nil {
		s.emitFailure(ctx, withKind(ev, models.EventPostPersistFailed), err)
		return attachmentOutcome{}
	}

	ok := withKind(ev, models.EventPostCreated)
	ok.PostID = post.ID
	ok.At = s.now()
	s.events.Emit(ctx, ok)

	return attachmentOutcome{post: &post}
}

func (s *ingestService) drop(ctx context.Context, report models.IngestReport, ev models.IngestEvent, err error) models.IngestReport {
	s.emitFailure(ctx, ev, err)

	report.State = models.StateDropped
	report.Reason = ev.Kind
	return report
}

func (s *ingestService) emitFailure(ctx context.Context, ev models.IngestEvent, err error) {
	if err != nil {
		ev.Error = err.Error()
	}
	ev.At = s.now()
	s.events.Emit(ctx, ev)
}

func withKind(ev models.IngestEvent, kind models.EventKind) models.IngestEvent {
	ev.Kind = kind
	return ev
}
