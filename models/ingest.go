package models

import (
	"io"
	"time"
)

// IngestState is the position of a notification in the ingestion pipeline.
type IngestState string

const (
	StateReceived      IngestState = "received"
	StateValidated     IngestState = "validated"
	StateAuthenticated IngestState = "authenticated"
	StateFetched       IngestState = "fetched"
	StateDone          IngestState = "done"
	StateDropped       IngestState = "dropped"
)

// EventKind classifies ingestion events emitted for operators.
type EventKind string

const (
	EventValidationFailed   EventKind = "validation_failed"
	EventUserNotFound       EventKind = "user_not_found"
	EventUserLookupFailed   EventKind = "user_lookup_failed"
	EventAuthExpired        EventKind = "auth_expired"
	EventRemoteAPIError     EventKind = "remote_api_error"
	EventUnknownContentType EventKind = "unknown_content_type"
	EventDownloadFailed     EventKind = "download_failed"
	EventStorageWriteFailed EventKind = "storage_write_failed"
	EventPostPersistFailed  EventKind = "post_persist_failed"
	EventPostCreated        EventKind = "post_created"
	EventNotificationDone   EventKind = "notification_done"
)

// IngestEvent is a structured record of a terminal outcome.
type IngestEvent struct {
	Kind         EventKind `json:"kind"`
	UserToken    string    `json:"user_token,omitempty"`
	ItemID       string    `json:"item_id,omitempty"`
	AttachmentID string    `json:"attachment_id,omitempty"`
	ContentType  string    `json:"content_type,omitempty"`
	PostID       int64     `json:"post_id,omitempty"`
	Error        string    `json:"error,omitempty"`
	At           time.Time `json:"at"`
}

// Failure reports whether the event describes a dropped notification or
// attachment.
func (e IngestEvent) Failure() bool {
	return e.Kind != EventPostCreated && e.Kind != EventNotificationDone
}

// IngestReport summarizes the processing of one notification.
type IngestReport struct {
	State   IngestState `json:"state"`
	Reason  EventKind   `json:"reason,omitempty"`
	Created []Post      `json:"created,omitempty"`
	Failed  int         `json:"failed"`
	Skipped int         `json:"skipped"`
}

// Download is a streamed attachment body. The caller closes Body.
type Download struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}
