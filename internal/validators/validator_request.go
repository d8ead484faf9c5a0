package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/mirror-gallery/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserActions = "user_actions"
	FieldUserToken   = "user_token"
	FieldItemID      = "item_id"
	FieldUsername    = "username"
)

// MaxUsernameLength bounds the username in runes.
const MaxUsernameLength = 64

// RequestValidator implements [Validator] for the inbound push notification
// and the registration form. Both value and pointer forms are accepted.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Notification:
		return v.validateNotification(value, fields...)
	case *models.Notification:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNotification(*value, fields...)

	case models.Registration:
		return v.validateRegistration(value, fields...)
	case *models.Registration:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegistration(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateNotification(n models.Notification, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserActions, FieldUserToken, FieldItemID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserActions:
			if !n.IsShare() {
				return ErrNoShareAction
			}
		case FieldUserToken:
			if strings.TrimSpace(n.UserToken) == "" {
				return ErrEmptyUserToken
			}
		case FieldItemID:
			if strings.TrimSpace(n.ItemID) == "" {
				return ErrEmptyItemID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRegistration(r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(r.Username); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUsername accepts names that are safe as a single URL path segment.
func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}

	for _, r := range username {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
			continue
		}
		return ErrUsernameInvalidChars
	}
	if username == "." || username == ".." {
		return ErrUsernameInvalidChars
	}

	return nil
}
