package http

import (
	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	loginPath       = "/auth/provider"
	failurePath     = "/auth/failure"
	newUserPath     = "/new_user"
	userContentPath = "/usercontent"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// provider push endpoint, no session
	router.Post(config.NotifyPath, h.notify)

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.index)
		r.Get(loginPath, h.beginLogin)
		r.Get(config.CallbackPath, h.loginCallback)
		r.Get(failurePath, h.authFailure)
		r.Get(newUserPath, h.newUserForm)
		r.Post(newUserPath, h.register)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/posts", h.recentPosts)
		r.Get("/users/{username}/posts", h.userPosts)
		r.Get("/version/", h.getServerVersion)
	})

	router.Get(config.ContactImagePath, h.contactImage)
	if h.userContentDir != "" {
		router.Handle(userContentPath+"/*", h.userContent())
	} else {
		router.Get(userContentPath+"/*", h.linkedContent)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
