package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/go-chi/chi/v5"
)

// userContent serves stored attachments. Directory listings are not exposed.
func (h *Handler) userContent() http.Handler {
	files := http.StripPrefix(userContentPath+"/", http.FileServer(http.Dir(h.userContentDir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// linkedContent redirects to a short-lived link of an attachment kept in
// object storage.
func (h *Handler) linkedContent(w http.ResponseWriter, r *http.Request) {
	link, err := h.services.GalleryService.ContentURL(r.Context(), chi.URLParam(r, "*"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, link, http.StatusFound)
}

// contactImage serves the image shown on the contact card inserted during
// user bootstrap.
func (h *Handler) contactImage(w http.ResponseWriter, r *http.Request) {
	if h.staticDir == "" {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, strings.TrimPrefix(config.ContactImagePath, "/")))
}
