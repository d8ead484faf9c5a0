package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/utils"
)

// maxNotificationSize bounds the webhook body.
const maxNotificationSize = 1 << 20

// notify receives a provider push notification. The provider retries on any
// non-2xx answer, so the response is 200 with an empty JSON object no matter
// how ingestion ended; outcomes are reported through ingestion events.
func (h *Handler) notify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxNotificationSize))
	if err != nil {
		log.Warn().Err(err).Msg("reading notification body failed")
	}

	report := h.services.IngestService.HandleNotification(r.Context(), payload)
	log.Debug().
		Str("state", string(report.State)).
		Str("reason", string(report.Reason)).
		Int("created", len(report.Created)).
		Msg("notification handled")

	utils.WriteJSON(w, struct{}{}, http.StatusOK)
}
