package models

import (
	"errors"
	"time"
)

// TimelineItem is a card on the wearable's timeline as returned by the
// mirror API.
type TimelineItem struct {
	ID          string       `json:"id"`
	Text        string       `json:"text,omitempty"`
	Created     time.Time    `json:"created"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a binary resource linked to a timeline item.
type Attachment struct {
	ID          string `json:"id"`
	ContentType string `json:"contentType"`
	ContentURL  string `json:"contentUrl"`
}

// TimelineInsert is the body of a timeline insert request.
type TimelineInsert struct {
	Text string `json:"text"`
}

// Contact is the sharing target shown on the wearable.
type Contact struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	ImageURLs   []string `json:"imageUrls"`
}

// Subscription registers a push notification callback for a collection.
type Subscription struct {
	ID          string `json:"id,omitempty"`
	Collection  string `json:"collection"`
	UserToken   string `json:"userToken"`
	CallbackURL string `json:"callbackUrl"`
}

// UserInfo is the identity document returned by the provider's userinfo
// endpoint. Older endpoints report the subject as "id", OpenID Connect ones
// as "sub".
type UserInfo struct {
	ID    string `json:"id,omitempty"`
	Sub   string `json:"sub,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

var ErrEmptyUserInfo = errors.New("userinfo carries no subject")

// UID returns the provider subject.
func (u UserInfo) UID() (string, error) {
	if u.ID != "" {
		return u.ID, nil
	}
	if u.Sub != "" {
		return u.Sub, nil
	}
	return "", ErrEmptyUserInfo
}
