package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/scribble/internal/dice"
	"github.com/osse101/scribble/internal/enemy"
	"github.com/osse101/scribble/internal/handler"
	"github.com/osse101/scribble/internal/inventory"
	"github.com/osse101/scribble/internal/metrics"
	"github.com/osse101/scribble/internal/search"
	"github.com/osse101/scribble/internal/stats"
)

// Services are the core operations exposed over HTTP
type Services struct {
	Inventory inventory.Service
	Enemies   enemy.Service
	Stats     stats.Service
	Search    search.Service
	Dice      *dice.Roller
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey, version string, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, version, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the HTTP routes. API handlers share one lock so a request
// sees every earlier request's writes.
func NewRouter(apiKey, version string, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/version", handler.HandleVersion(version))
	r.Handle("/metrics", promhttp.Handler())

	var eventMu sync.Mutex
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(serializeMiddleware(&eventMu))

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleListInventory(svc.Inventory))
			r.Post("/add", handler.HandleAddItem(svc.Inventory))
			r.Post("/remove", handler.HandleRemoveItem(svc.Inventory))
		})

		r.Route("/enemies", func(r chi.Router) {
			r.Get("/", handler.HandleListEnemies(svc.Enemies))
			r.Post("/", handler.HandleAddEnemy(svc.Enemies))
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/", handler.HandleListStats(svc.Stats))
			r.Post("/adjust", handler.HandleAdjustStat(svc.Stats))
		})

		r.Post("/dice/roll", handler.HandleRoll(svc.Dice))
		r.Get("/search", handler.HandleSearch(svc.Search))
	})

	return r
}

// Handler returns the root handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
