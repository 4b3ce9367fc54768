package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "If-Match", traceIDHeader},
		ExposedHeaders: []string{"Authorization", "ETag", traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(withGZipRequest, middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.greeting)
	router.Get("/version", h.getServerVersion)
	router.Handle("/metrics", h.metrics.handler())
	router.Get("/check-role/{email}", h.checkRole)

	// credential endpoints are throttled per client IP
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/admin/login", h.login)
		r.Post("/register", h.register)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.listProjects)
		r.Get("/{section}", h.getSection)

		// every write re-verifies the bearer token
		r.Group(func(r chi.Router) {
			r.Use(h.auth, requireAdmin)
			r.Post("/projects", h.createProject)
			r.Put("/projects/{id}", h.updateProject)
			r.Delete("/projects/{id}", h.deleteProject)
			r.Post("/{section}", h.saveSection)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) allowedOrigins() []string {
	if len(h.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return h.cfg.AllowedOrigins
}
