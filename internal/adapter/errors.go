package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRemoteAPI matches every [*RemoteAPIError].
	ErrRemoteAPI = errors.New("remote api error")

	// ErrDownload wraps any failure to fetch an attachment body.
	ErrDownload = errors.New("attachment download failed")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// RemoteAPIError is a non-2xx answer of the provider.
type RemoteAPIError struct {
	Status int
	Body   string
}

func (e *RemoteAPIError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Status)
	}
	return fmt.Sprintf("remote api: http %d: %s", e.Status, body)
}

func (e *RemoteAPIError) Is(target error) bool {
	return target == ErrRemoteAPI
}

// Unwrap exposes the status sentinel, if any.
func (e *RemoteAPIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return nil
	}
}
