package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// promhttp negotiates its own compression
	router.Method("GET", "/metrics", h.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/healthz", h.health)

		r.Group(func(r chi.Router) {
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}

			r.Get("/api/version", h.getServerVersion)

			// stateless RSA routes
			r.Post("/api/generate", h.generate)
			r.Post("/api/encrypt", h.encrypt)
			r.Post("/api/decrypt", h.decrypt)
			r.Post("/api/avalanche", h.avalanche)

			// vault routes require a caller
			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Get("/api/saved-ciphertexts", h.listSavedCiphertexts)
				r.Post("/api/saved-ciphertexts", h.createSavedCiphertext)
				r.Delete("/api/saved-ciphertexts/{id}", h.deleteSavedCiphertext)
				r.Post("/api/saved-ciphertexts/{id}/decrypt", h.decryptSavedCiphertext)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
