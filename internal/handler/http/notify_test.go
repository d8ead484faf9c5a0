package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/service"
	"github.com/MKhiriev/mirror-gallery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_AlwaysAnswersOK(t *testing.T) {
	reports := []struct {
		name   string
		report models.IngestReport
	}{
		{"done", models.IngestReport{State: models.StateDone, Created: []models.Post{{ID: 1}}}},
		{"validation failed", models.IngestReport{State: models.StateDropped, Reason: models.EventValidationFailed}},
		{"user not found", models.IngestReport{State: models.StateDropped, Reason: models.EventUserNotFound}},
		{"auth expired", models.IngestReport{State: models.StateDropped, Reason: models.EventAuthExpired}},
		{"remote api error", models.IngestReport{State: models.StateDropped, Reason: models.EventRemoteAPIError}},
		{"partial failure", models.IngestReport{State: models.StateDone, Failed: 2, Skipped: 1}},
	}

	for _, tt := range reports {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithServices(t, &service.Services{
				IngestService: &mockIngestService{handleNotificationFn: func(context.Context, []byte) models.IngestReport {
					return tt.report
				}},
			})

			req := httptest.NewRequest(http.MethodPost, config.NotifyPath, strings.NewReader(`{"userToken":"u"}`))
			rec := httptest.NewRecorder()

			h.notify(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{}`, rec.Body.String())
		})
	}
}

func TestNotify_PassesBodyThrough(t *testing.T) {
	const body = `{"userActions":[{"type":"SHARE"}],"userToken":"u1","itemId":"item-1"}`

	var got []byte
	h := newHandlerWithServices(t, &service.Services{
		IngestService: &mockIngestService{handleNotificationFn: func(_ context.Context, payload []byte) models.IngestReport {
			got = payload
			return models.IngestReport{State: models.StateDone}
		}},
	})

	rec := httptest.NewRecorder()
	h.notify(rec, httptest.NewRequest(http.MethodPost, config.NotifyPath, strings.NewReader(body)))

	assert.Equal(t, body, string(got))
}

func TestNotify_EmptyBody(t *testing.T) {
	called := false
	h := newHandlerWithServices(t, &service.Services{
		IngestService: &mockIngestService{handleNotificationFn: func(_ context.Context, payload []byte) models.IngestReport {
			called = true
			assert.Empty(t, payload)
			return models.IngestReport{State: models.StateDropped, Reason: models.EventValidationFailed}
		}},
	})

	rec := httptest.NewRecorder()
	h.notify(rec, httptest.NewRequest(http.MethodPost, config.NotifyPath, http.NoBody))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotify_TruncatesOversizedBody(t *testing.T) {
	var size int
	h := newHandlerWithServices(t, &service.Services{
		IngestService: &mockIngestService{handleNotificationFn: func(_ context.Context, payload []byte) models.IngestReport {
			size = len(payload)
			return models.IngestReport{State: models.StateDropped, Reason: models.EventValidationFailed}
		}},
	})

	body := strings.Repeat("x", maxNotificationSize+100)
	rec := httptest.NewRecorder()
	h.notify(rec, httptest.NewRequest(http.MethodPost, config.NotifyPath, strings.NewReader(body)))

	assert.Equal(t, maxNotificationSize, size)
	assert.Equal(t, http.StatusOK, rec.Code)
}
