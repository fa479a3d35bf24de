package http

import (
	"net/http"

	_ "github.com/DRSN-tech/catalog/docs" // Регистрация описания API в swag
	"github.com/DRSN-tech/catalog/internal/usecase"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalog usecase.CatalogUC) {
	r.router.Use(RequestID, middleware.Recoverer, AccessLog(r.logger))

	r.router.Get("/healthz", healthHandler(catalog))
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCategoryRoutes(v1, NewCategoryHandler(catalog, r.logger))
		registerProductRoutes(v1, NewProductHandler(catalog, r.logger))
		registerTestimonialRoutes(v1, NewTestimonialHandler(catalog, r.logger))
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Route("/categories", func(c chi.Router) {
		c.Get("/", h.list)
		c.Post("/", h.create)
		c.Get("/{slug}", h.getBySlug)
		c.Patch("/{id}", h.update)
		c.Delete("/{id}", h.delete)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.list)
		pr.Post("/", prHandler.create)
		pr.Get("/category/{categoryID}", prHandler.listByCategory)
		pr.Get("/{id}", prHandler.get)
		pr.Patch("/{id}", prHandler.update)
		pr.Delete("/{id}", prHandler.delete)
	})
}

func registerTestimonialRoutes(router chi.Router, h *TestimonialHandler) {
	router.Get("/testimonials", h.list)
	router.Post("/testimonials", h.create)
	router.Post("/contact", h.contact)
}

// healthHandler сообщает выбранное хранилище. Недоступный бэкенд — 503.
func healthHandler(catalog usecase.CatalogUC) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := catalog.Health(r.Context())

		code := http.StatusOK
		if status.Status != usecase.StatusOK {
			code = http.StatusServiceUnavailable
		}

		WriteSuccess(w, code, status)
	}
}
