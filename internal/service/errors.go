package service

import "errors"

var (
	ErrValidation = errors.New("invalid notification")

	ErrUserNotFound = errors.New("user not found")

	ErrInvalidState          = errors.New("oauth state mismatch")
	ErrNoPendingRegistration = errors.New("no pending registration")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrAlreadyRegistered     = errors.New("user already registered")
	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrSessionInvalid        = errors.New("session is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
