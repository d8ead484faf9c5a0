package http

import (
	"net/http"
	"path"
	"time"

	"github.com/MKhiriev/mirror-gallery/internal/utils"
	"github.com/MKhiriev/mirror-gallery/models"
	"github.com/go-chi/chi/v5"
)

// postView is a post as rendered to clients.
type postView struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username,omitempty"`
	ContentType string    `json:"content_type"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

type indexResponse struct {
	UID   string     `json:"uid,omitempty"`
	Posts []postView `json:"posts"`
}

type userPostsResponse struct {
	Username string     `json:"username"`
	Posts    []postView `json:"posts"`
}

func newPostViews(posts []models.Post) []postView {
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, postView{
			ID:          p.ID,
			Username:    p.Username,
			ContentType: p.ContentType,
			URL:         path.Join(userContentPath, p.ContentPath),
			CreatedAt:   p.CreatedAt,
		})
	}
	return views
}

// index is the front page: the visitor's uid when logged in and the most
// recent posts.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(r)

	posts, err := h.services.GalleryService.RecentPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, indexResponse{UID: session.UID(), Posts: newPostViews(posts)}, http.StatusOK)
}

func (h *Handler) recentPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.GalleryService.RecentPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, newPostViews(posts), http.StatusOK)
}

func (h *Handler) userPosts(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, posts, err := h.services.GalleryService.UserPosts(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, userPostsResponse{Username: user.Username, Posts: newPostViews(posts)}, http.StatusOK)
}
