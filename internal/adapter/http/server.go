package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/domain"
	"github.com/couchcryptid/weather-advisory-service/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dashboard renders reports and reports whether the service is ready to
// serve traffic.
type Dashboard interface {
	Render(ctx context.Context, city string) (domain.Report, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the dashboard API alongside health, readiness, and metrics
// endpoints.
type Server struct {
	httpServer *http.Server
	dashboard  Dashboard
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the probe routes and the /api/v1
// dashboard routes.
func NewServer(addr string, dash Dashboard, logger *slog.Logger) *Server {
	r := chi.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		dashboard: dash,
		logger:    logger,
	}

	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", handleReady(dash))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/cities", s.handleCities)
		api.Get("/weather", s.handleWeather)
		api.Get("/advisories", s.handleAdvisories)
		api.Get("/dashboard.png", s.handleDashboardPNG)
	})

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(dash Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dash.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleCities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"cities": domain.PopularCities()})
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	report, err := s.dashboard.Render(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleDashboardPNG(w http.ResponseWriter, r *http.Request) {
	report, err := s.dashboard.Render(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Encode fully before writing so a drawing failure can still be a 500.
	buf := new(bytes.Buffer)
	if err := render.PNG(buf, report); err != nil {
		s.logger.Error("dashboard image failed", "id", report.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("ETag", `"`+report.ID+`"`)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Warn("render failed",
			"request_id", middleware.GetReqID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps a render failure to an HTTP status. Provider failures are
// upstream problems, except an unknown city which the caller can fix.
func statusFor(err error) int {
	var pe *domain.ProviderError
	switch {
	case errors.Is(err, domain.ErrCityRequired):
		return http.StatusBadRequest
	case errors.As(err, &pe) && pe.Code == http.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
