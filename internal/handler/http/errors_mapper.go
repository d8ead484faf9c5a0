package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/service"
	"github.com/MKhiriev/mirror-gallery/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidUsername:       http.StatusBadRequest,
	service.ErrNoPendingRegistration: http.StatusUnauthorized,
	service.ErrInvalidState:          http.StatusUnauthorized,
	service.ErrSessionInvalid:        http.StatusUnauthorized,
	service.ErrUsernameTaken:         http.StatusConflict,
	service.ErrAlreadyRegistered:     http.StatusConflict,
	service.ErrUserNotFound:          http.StatusNotFound,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUIDAlreadyExists:      http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrContentNotFound:       http.StatusNotFound,
	store.ErrContentNotServed:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server-side failures
// are logged and their details are not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
