package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/alemeds/rifa-multivendedor/internal/app"
)

// BoardProvider bundles the read-model surface the router mounts.
type BoardProvider interface {
	BoardReader
	SummaryReader
}

// EngineProvider bundles the transition operations the router mounts.
type EngineProvider interface {
	Reserver
	Confirmer
	Canceler
	app.Sweeper
}

// NewRouter wires all routes and the middleware stack.
func NewRouter(board BoardProvider, engine EngineProvider, corsOrigins []string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", HealthHandler)
	r.Get("/board", HandleBoard(board))
	r.Get("/board/summary", HandleSummary(board))
	r.Route("/items/{number}", func(r chi.Router) {
		r.Post("/reserve", HandleReserve(engine))
		r.Post("/confirm", HandleConfirm(engine))
		r.Post("/cancel", HandleCancel(engine))
	})
	r.Post("/sweep", HandleSweep(engine))

	return r
}
