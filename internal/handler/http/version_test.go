package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/mirror-gallery/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	for _, version := range []string{"1.2.3", ""} {
		t.Run("version "+version, func(t *testing.T) {
			h := newHandlerWithServices(t, &service.Services{AppInfoService: &mockAppInfoService{version: version}})

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, version, rec.Body.String())
		})
	}
}
