// Package dashboard runs one render pass: fetch the observation for a city,
// evaluate advisories and outfit, attach animations and publish the report.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/domain"
	"github.com/couchcryptid/weather-advisory-service/internal/observability"
)

// Publisher forwards a finished report downstream.
type Publisher interface {
	Publish(ctx context.Context, report domain.Report) error
}

// Service orchestrates a dashboard render. Assets and publisher are optional;
// pass nil to disable them.
type Service struct {
	provider  domain.WeatherProvider
	assets    domain.AnimationLoader
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics

	// Set when the most recent provider call got no usable HTTP status.
	unreachable atomic.Pointer[providerFailure]
}

type providerFailure struct {
	err error
	at  time.Time
}

// New creates a Service with the given collaborators and observability.
func New(provider domain.WeatherProvider, assets domain.AnimationLoader, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics) *Service {
	s := &Service{
		provider:  provider,
		assets:    assets,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
	metrics.AssetsEnabled.Set(boolGauge(assets != nil))
	metrics.PublishEnabled.Set(boolGauge(publisher != nil))
	return s
}

// CheckReadiness returns nil unless the last provider call failed at the
// transport level: a non-200 status or no response at all.
func (s *Service) CheckReadiness(_ context.Context) error {
	if f := s.unreachable.Load(); f != nil {
		return fmt.Errorf("provider call failed at %s: %w", f.at.Format(time.RFC3339), f.err)
	}
	return nil
}

// Render produces the report for city. Provider failures are returned as is
// so callers can tell *domain.TransportError from *domain.ProviderError.
func (s *Service) Render(ctx context.Context, city string) (domain.Report, error) {
	start := time.Now()
	report, err := s.render(ctx, city)
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	s.metrics.Renders.WithLabelValues(renderOutcome(err)).Inc()
	return report, err
}

func (s *Service) render(ctx context.Context, city string) (domain.Report, error) {
	city = domain.NormalizeCity(city)
	if city == "" {
		return domain.Report{}, domain.ErrCityRequired
	}

	obs, err := s.provider.CurrentWeather(ctx, city)
	s.trackProvider(err)
	if err != nil {
		s.logger.Warn("weather fetch failed", "city", city, "kind", domain.ErrorKind(err), "error", err)
		return domain.Report{}, err
	}

	report := domain.NewReport(obs)
	s.attachAnimations(ctx, &report)
	s.recordEvaluation(report)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, report); err != nil {
			s.metrics.PublishErrors.Inc()
			s.logger.Error("publish report failed", "id", report.ID, "error", err)
		} else {
			s.metrics.ReportsPublished.Inc()
		}
	}

	s.logger.Info("dashboard rendered",
		"id", report.ID,
		"city", report.City,
		"condition", report.Condition,
		"alerts", len(report.Alerts),
	)
	return report, nil
}

// attachAnimations loads both animation documents. A failed load leaves the
// document empty; the renderers show a placeholder instead.
func (s *Service) attachAnimations(ctx context.Context, report *domain.Report) {
	if s.assets == nil {
		return
	}
	if doc, err := s.assets.LoadAnimation(ctx, report.WeatherAnimationURL); err != nil {
		s.logger.Warn("weather animation unavailable", "url", report.WeatherAnimationURL, "error", err)
	} else {
		report.WeatherAnimation = doc
	}
	if doc, err := s.assets.LoadAnimation(ctx, report.PlantAnimationURL); err != nil {
		s.logger.Warn("plant animation unavailable", "url", report.PlantAnimationURL, "error", err)
	} else {
		report.PlantAnimation = doc
	}
}

func (s *Service) recordEvaluation(report domain.Report) {
	for _, a := range report.Alerts {
		s.metrics.AdvisoriesIssued.WithLabelValues(a.Key()).Inc()
	}
	for _, o := range report.Outfit {
		s.metrics.OutfitItems.WithLabelValues(o.Key()).Inc()
	}
}

// trackProvider updates readiness from a provider result. Any error that
// came with a 200 response (application error, bad payload) proves the API
// is reachable; a caller cancellation proves nothing either way.
func (s *Service) trackProvider(err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	var te *domain.TransportError
	if errors.As(err, &te) || errors.Is(err, domain.ErrProviderUnreachable) {
		s.unreachable.Store(&providerFailure{err: err, at: time.Now().UTC()})
		return
	}
	s.unreachable.Store(nil)
}

func renderOutcome(err error) string {
	if err == nil {
		return "success"
	}
	if errors.Is(err, domain.ErrCityRequired) {
		return "invalid_request"
	}
	switch domain.ErrorKind(err) {
	case "transport":
		return "transport_error"
	case "application":
		return "application_error"
	default:
		return "internal_error"
	}
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
