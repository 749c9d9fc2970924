package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/skygrid-lab/skygrid/pkg/usecase"
	"github.com/skygrid-lab/skygrid/pkg/utils/apperr"
	"github.com/skygrid-lab/skygrid/pkg/utils/metrics"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates the HTTP server exposing the overlay engine
func NewServer(ctx context.Context, addr string, overlayUC *usecase.Overlay, collector *metrics.Collector) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(MetricsMiddleware(collector))
	router.Use(middleware.Recoverer)

	overlayHandler := NewOverlayHandler(overlayUC)

	router.Get("/health", handleHealth)
	router.Handle("/metrics", promhttp.HandlerFor(
		collector.Registry(),
		promhttp.HandlerOpts{},
	))

	router.Route("/api", func(r chi.Router) {
		r.Get("/weeks", overlayHandler.HandleWeeks)
		r.Get("/tails", overlayHandler.HandleTails)
		r.Get("/overlay/{date}", overlayHandler.HandleDayOverlay)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "skygrid",
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("failed to encode response", "error", err)
	}
}

// writeError reports the error and writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	apperr.Handle(ctx, err)
	writeJSON(ctx, w, status, map[string]string{
		"error": err.Error(),
	})
}
