package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoShareAction  = errors.New("notification carries no SHARE user action")
	ErrEmptyUserToken = errors.New("user token is required")
	ErrEmptyItemID    = errors.New("item id is required")

	ErrEmptyUsername        = errors.New("username is required")
	ErrUsernameTooLong      = errors.New("username is too long")
	ErrUsernameInvalidChars = errors.New("username may only contain letters, digits, '.', '-' and '_'")
)
