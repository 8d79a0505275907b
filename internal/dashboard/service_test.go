package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/adapter/openweather"
	"github.com/couchcryptid/weather-advisory-service/internal/dashboard"
	"github.com/couchcryptid/weather-advisory-service/internal/domain"
	"github.com/couchcryptid/weather-advisory-service/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockProvider struct {
	obs    domain.Observation
	err    error
	cities []string
}

func (m *mockProvider) CurrentWeather(_ context.Context, city string) (domain.Observation, error) {
	m.cities = append(m.cities, city)
	if m.err != nil {
		return domain.Observation{}, m.err
	}
	obs := m.obs
	obs.City = city
	return obs, nil
}

type mockAssets struct {
	docs map[string]json.RawMessage
}

func (m *mockAssets) LoadAnimation(_ context.Context, url string) (json.RawMessage, error) {
	if doc, ok := m.docs[url]; ok {
		return doc, nil
	}
	return nil, errors.New("not found")
}

type mockPublisher struct {
	published []domain.Report
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, r domain.Report) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, r)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var stormObservation = domain.Observation{
	Condition:      domain.ConditionThunderstorm,
	Description:    "Thunderstorm With Heavy Rain",
	TemperatureC:   27,
	HumidityPct:    91,
	WindSpeedMS:    11,
	ObservedAt:     time.Date(2024, 7, 1, 6, 30, 0, 0, time.UTC),
	TimezoneOffset: 19800,
}

func fixClock(t *testing.T) time.Time {
	t.Helper()
	now := time.Date(2024, 7, 1, 6, 31, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { domain.SetClock(clockwork.NewRealClock()) })
	return now
}

// --- tests ---

func TestService_Render_HappyPath(t *testing.T) {
	now := fixClock(t)
	prov := &mockProvider{obs: stormObservation}
	pub := &mockPublisher{}
	metrics := observability.NewMetricsForTesting()

	svc := dashboard.New(prov, nil, pub, discardLogger(), metrics)

	report, err := svc.Render(context.Background(), "  Bombay, IN ")
	require.NoError(t, err)

	assert.Equal(t, []string{"Mumbai, IN"}, prov.cities, "city should be normalized before fetching")
	assert.Equal(t, "Mumbai, IN", report.City)
	assert.Equal(t, []domain.Advisory{domain.AdvisoryHighWind, domain.AdvisoryThunderstorm}, report.Alerts)
	assert.Equal(t, []domain.Outfit{domain.OutfitWarm, domain.OutfitAvoidMetal}, report.Outfit)
	assert.Equal(t, "2024-07-01 12:00:00", report.LocalTime)
	assert.Equal(t, now, report.GeneratedAt)
	assert.Nil(t, report.WeatherAnimation)

	require.Len(t, pub.published, 1)
	assert.Equal(t, report.ID, pub.published[0].ID)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Renders.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AdvisoriesIssued.WithLabelValues("high_wind")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AdvisoriesIssued.WithLabelValues("thunderstorm")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OutfitItems.WithLabelValues("avoid_metal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ReportsPublished))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PublishEnabled))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.AssetsEnabled))
}

func TestService_Render_EmptyCity(t *testing.T) {
	prov := &mockProvider{obs: stormObservation}
	metrics := observability.NewMetricsForTesting()
	svc := dashboard.New(prov, nil, nil, discardLogger(), metrics)

	_, err := svc.Render(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrCityRequired)
	assert.Empty(t, prov.cities, "provider must not be called")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Renders.WithLabelValues("invalid_request")))
}

func TestService_Render_ProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
		ready   bool
	}{
		{"transport", &domain.TransportError{StatusCode: 503}, "transport_error", false},
		{"application", &domain.ProviderError{Code: 404, Message: "city not found"}, "application_error", true},
		{"no response", fmt.Errorf("weather request: %w: %w", domain.ErrProviderUnreachable, errors.New("dial tcp: connection refused")), "internal_error", false},
		{"malformed payload", errors.New("decode response: unexpected EOF"), "internal_error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &mockPublisher{}
			metrics := observability.NewMetricsForTesting()
			svc := dashboard.New(&mockProvider{err: tt.err}, nil, pub, discardLogger(), metrics)

			_, err := svc.Render(context.Background(), "Atlantis")
			require.Error(t, err)
			assert.Equal(t, tt.err.Error(), err.Error())
			assert.Empty(t, pub.published, "failed renders are not published")
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Renders.WithLabelValues(tt.outcome)))

			readyErr := svc.CheckReadiness(context.Background())
			if tt.ready {
				assert.NoError(t, readyErr)
			} else {
				assert.Error(t, readyErr)
			}
		})
	}
}

func TestService_CheckReadiness_RecoversAfterSuccess(t *testing.T) {
	prov := &mockProvider{err: &domain.TransportError{StatusCode: 502}}
	svc := dashboard.New(prov, nil, nil, discardLogger(), observability.NewMetricsForTesting())

	require.NoError(t, svc.CheckReadiness(context.Background()), "ready before any call")

	_, _ = svc.Render(context.Background(), "Pune, IN")
	err := svc.CheckReadiness(context.Background())
	require.Error(t, err)
	var te *domain.TransportError
	assert.True(t, errors.As(err, &te))

	prov.err = nil
	prov.obs = stormObservation
	_, err = svc.Render(context.Background(), "Pune, IN")
	require.NoError(t, err)
	assert.NoError(t, svc.CheckReadiness(context.Background()))
}

func TestService_Render_Animations(t *testing.T) {
	weatherURL := domain.WeatherAnimationURL(domain.ConditionThunderstorm)
	assets := &mockAssets{docs: map[string]json.RawMessage{
		weatherURL: json.RawMessage(`{"v":"5.5.7"}`),
	}}
	metrics := observability.NewMetricsForTesting()
	svc := dashboard.New(&mockProvider{obs: stormObservation}, assets, nil, discardLogger(), metrics)

	report, err := svc.Render(context.Background(), "Mumbai, IN")
	require.NoError(t, err, "asset failures must not fail the render")

	assert.JSONEq(t, `{"v":"5.5.7"}`, string(report.WeatherAnimation))
	assert.Nil(t, report.PlantAnimation)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AssetsEnabled))
}

func TestService_Render_PublishFailureIsNotFatal(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker down")}
	metrics := observability.NewMetricsForTesting()
	svc := dashboard.New(&mockProvider{obs: stormObservation}, nil, pub, discardLogger(), metrics)

	_, err := svc.Render(context.Background(), "Mumbai, IN")
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PublishErrors))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ReportsPublished))
}

func TestService_CheckReadiness_MalformedBodyStaysReady(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer api.Close()

	metrics := observability.NewMetricsForTesting()
	provider := openweather.NewClient("test-key", api.URL, time.Second, metrics, discardLogger())
	svc := dashboard.New(provider, nil, nil, discardLogger(), metrics)

	_, err := svc.Render(context.Background(), "Delhi, IN")
	require.Error(t, err)
	assert.NoError(t, svc.CheckReadiness(context.Background()), "a 200 response proves the API is reachable")
}

func TestService_CheckReadiness_UnreachableAPI(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := api.URL
	api.Close()

	metrics := observability.NewMetricsForTesting()
	provider := openweather.NewClient("test-key", baseURL, time.Second, metrics, discardLogger())
	svc := dashboard.New(provider, nil, nil, discardLogger(), metrics)

	_, err := svc.Render(context.Background(), "Delhi, IN")
	require.ErrorIs(t, err, domain.ErrProviderUnreachable)

	readyErr := svc.CheckReadiness(context.Background())
	require.Error(t, readyErr)
	assert.ErrorIs(t, readyErr, domain.ErrProviderUnreachable)
}
