// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pahana-billing/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	customerHandler *handler.CustomerHandler,
	itemHandler *handler.ItemHandler,
	billHandler *handler.BillHandler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customerHandler.List)
			r.Post("/", customerHandler.Create)
			r.Get("/{accountNo}", customerHandler.Get)
			r.Put("/{accountNo}", customerHandler.Update)
			r.Delete("/{accountNo}", customerHandler.Delete)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.List)
			r.Post("/", itemHandler.Create)
			r.Get("/{code}", itemHandler.Get)
			r.Put("/{code}", itemHandler.Update)
			r.Delete("/{code}", itemHandler.Delete)
		})

		r.Route("/bills", func(r chi.Router) {
			r.Get("/", billHandler.List)
			r.Post("/calculate", billHandler.Calculate)
			r.Get("/{billID}", billHandler.Get)
		})
	})

	return r
}
