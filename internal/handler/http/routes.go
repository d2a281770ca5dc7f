package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the command surface.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/ping", h.ping)

	// routes without authorization
	router.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/login/2fa", h.verifySecondFactor)
	})

	// vault commands, scoped to the session owner
	router.Route("/api/credentials", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.getCredentials)
		r.Post("/", h.createCredential)
		r.Put("/{id}", h.updateCredential)
		r.Delete("/{id}", h.deleteCredential)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
