package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/mirror-gallery/internal/service"
	"github.com/MKhiriev/mirror-gallery/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid username", service.ErrInvalidUsername, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("%w: %q", service.ErrUserNotFound, "bob"), http.StatusNotFound},
		{"store not found", store.ErrNoUserWasFound, http.StatusNotFound},
		{"username taken", service.ErrUsernameTaken, http.StatusConflict},
		{"pending missing", service.ErrNoPendingRegistration, http.StatusUnauthorized},
		{"query failure", fmt.Errorf("listing: %w", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
