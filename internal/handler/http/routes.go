package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	security := h.newSecurityMiddleware()

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(security.CORS())
	router.Use(withSecurityHeaders)
	router.Use(h.withLogging)
	router.Use(withMetrics)

	router.Handle("/metrics", promhttp.Handler())

	// every /api path, unknown ones included, is rate limited and sanitized
	router.Route("/api", func(r chi.Router) {
		r.Use(security.RateLimit())
		r.Use(h.withGZip)
		r.Use(middleware.RequestSize(h.security.BodyLimit))
		r.Use(h.withSanitizedInput)
		r.Use(h.withParameterPollutionGuard)
		r.Use(withRequestTime)

		r.Get("/version", h.getServerVersion)

		r.Get("/v1/users", h.getAllUsers)
		r.Post("/v1/users", h.createUser)
		r.Get("/v1/users/{id}", h.getUser)
		r.Patch("/v1/users/{id}", h.updateUser)
		r.Delete("/v1/users/{id}", h.deleteUser)

		r.NotFound(h.notFound)
		r.MethodNotAllowed(CheckHTTPMethod(h.notFound))
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(h.notFound))

	return router
}
