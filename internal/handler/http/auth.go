package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/mirror-gallery/internal/app"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/utils"
	"github.com/MKhiriev/mirror-gallery/models"
)

// beginLogin stores a fresh anti-forgery state in the session cookie and
// sends the visitor to the provider's consent page.
func (h *Handler) beginLogin(w http.ResponseWriter, r *http.Request) {
	consentURL, session, err := h.services.AuthService.BeginLogin(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("starting login failed")
		http.Redirect(w, r, failurePath, http.StatusFound)
		return
	}

	h.setSessionCookie(w, session)
	http.Redirect(w, r, consentURL, http.StatusFound)
}

func (h *Handler) loginCallback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	if providerErr := query.Get("error"); providerErr != "" {
		log.Warn().Str("provider_error", providerErr).Msg("authorization was declined")
		http.Redirect(w, r, failurePath, http.StatusFound)
		return
	}

	result, err := h.services.AuthService.CompleteLogin(r.Context(), sessionFromRequest(r), query.Get("state"), query.Get("code"))
	if err != nil {
		log.Err(err).Msg("completing login failed")
		h.clearSessionCookie(w)
		http.Redirect(w, r, failurePath, http.StatusFound)
		return
	}

	h.setSessionCookie(w, result.Session)
	if result.NeedsRegistration {
		log.Info().Msg(app.MsgRegistrationRequired)
		http.Redirect(w, r, newUserPath, http.StatusFound)
		return
	}

	log.Info().Str("uid", result.User.UID).Msg(app.MsgUserLoggedIn)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) authFailure(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, app.MsgAuthFailure, http.StatusUnauthorized)
}

type newUserResponse struct {
	RegistrationRequired bool `json:"registration_required"`
}

// newUserForm tells the client whether a registration is waiting for a
// username. Visitors without one are sent to the front page.
func (h *Handler) newUserForm(w http.ResponseWriter, r *http.Request) {
	if sessionFromRequest(r).PendingKey == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	utils.WriteJSON(w, newUserResponse{RegistrationRequired: true}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var registration models.Registration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, session, err := h.services.AuthService.Register(r.Context(), sessionFromRequest(r), registration)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("uid", user.UID).Str("username", user.Username).Msg(app.MsgUserRegistered)

	h.setSessionCookie(w, session)
	utils.WriteJSON(w, user, http.StatusCreated)
}
