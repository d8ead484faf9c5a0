package models

import "time"

// Post is a materialized attachment of a shared timeline item.
type Post struct {
	ID int64 `json:"id"`

	// AttachmentID is the provider's attachment id. Not unique across
	// redeliveries of the same notification.
	AttachmentID string `json:"attachment_id"`
	TimelineID   string `json:"timeline_id"`
	ContentType  string `json:"content_type"`

	// ContentPath is relative to the content store root.
	ContentPath string `json:"content_path"`

	// CreatedAt is copied from the timeline item, not the ingestion time.
	CreatedAt time.Time `json:"created_at"`

	UserUID  string `json:"user_uid"`
	Username string `json:"username,omitempty"`
}

func (p Post) TableName() string {
	return "posts"
}
