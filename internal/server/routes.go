package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the vaultsyncd router: one resource, three verbs.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)
	router.Use(h.withAuth)

	router.Route("/api/v1/vault", func(r chi.Router) {
		r.Get("/", h.getVault)
		r.Head("/", h.headVault)
		r.Put("/", h.putVault)
	})

	return router
}
