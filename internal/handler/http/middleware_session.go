package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/utils"
	"github.com/MKhiriev/mirror-gallery/models"
)

const sessionCookieName = "gallery_session"

// withSession decodes the session cookie and stores the claims in the
// request context. Missing or invalid cookies leave the visitor anonymous;
// an invalid one is also cleared.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := h.services.AuthService.ParseSession(r.Context(), cookie.Value)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("dropping invalid session cookie")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), session)))
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresAt != nil {
		cookie.Expires = session.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionFromRequest returns the decoded session or the anonymous zero value.
func sessionFromRequest(r *http.Request) models.Session {
	session, _ := utils.GetSessionFromContext(r.Context())
	return session
}
