package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dfreire7/repasse/internal/http/events"
	"github.com/dfreire7/repasse/internal/http/feerate"
	"github.com/dfreire7/repasse/internal/http/override"
	"github.com/dfreire7/repasse/internal/http/report"
	"github.com/dfreire7/repasse/internal/http/transfer"
)

func New(
	reportsV1 *report.Handler,
	overridesV1 *override.Handler,
	transfersV1 *transfer.Handler,
	feeratesV1 *feerate.Handler,
	eventsV1 *events.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/reports", reportsV1.Routes)

		r.Route("/overrides", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			overridesV1.Routes(r)
		})

		r.Route("/transfers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transfersV1.Routes(r)
		})

		r.Route("/feerates", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			feeratesV1.Routes(r)
		})

		r.Route("/events", eventsV1.Routes)
	})

	return router
}
