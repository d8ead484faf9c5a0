package events

import (
	"context"

	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/models"
	"github.com/rs/zerolog"
)

type logSink struct {
	logger *logger.Logger
}

// NewLogSink writes events as structured log lines. Failures are logged at
// warn level. The request logger in ctx is preferred so events carry the
// trace id.
func NewLogSink(log *logger.Logger) Sink {
	return &logSink{logger: log}
}

func (s *logSink) Emit(ctx context.Context, event models.IngestEvent) {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = s.logger
	}

	var e *zerolog.Event
	if event.Failure() {
		e = log.Warn()
	} else {
		e = log.Info()
	}

	e = e.Str("event", string(event.Kind)).
		Str("user_token", event.UserToken).
		Str("item_id", event.ItemID)
	if event.AttachmentID != "" {
		e = e.Str("attachment_id", event.AttachmentID)
	}
	if event.ContentType != "" {
		e = e.Str("content_type", event.ContentType)
	}
	if event.PostID != 0 {
		e = e.Int64("post_id", event.PostID)
	}
	if event.Error != "" {
		e = e.Str("error", event.Error)
	}

	e.Msg("ingest event")
}
