package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/domain"
	"github.com/couchcryptid/weather-advisory-service/internal/observability"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultBaseURL is the OpenWeatherMap current weather endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client implements domain.WeatherProvider using the OpenWeatherMap API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client. An empty baseURL uses
// DefaultBaseURL.
func NewClient(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// CurrentWeather fetches the current observation for a city in metric units.
// A non-200 HTTP status yields *domain.TransportError; a 200 response whose
// payload carries cod != 200 yields *domain.ProviderError. A request that gets
// no response wraps domain.ErrProviderUnreachable.
func (c *Client) CurrentWeather(ctx context.Context, city string) (domain.Observation, error) {
	params := url.Values{
		"q":     {city},
		"appid": {c.apiKey},
		"units": {"metric"},
	}

	start := time.Now()
	obs, err := c.doRequest(ctx, c.baseURL+"?"+params.Encode(), city)
	c.metrics.ProviderDuration.Observe(time.Since(start).Seconds())
	c.metrics.ProviderRequests.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		c.logger.Debug("weather request failed", "city", city, "error", err)
	}
	return obs, err
}

func (c *Client) doRequest(ctx context.Context, fullURL, city string) (domain.Observation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("weather request: %w: %w", domain.ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return domain.Observation{}, &domain.TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var owm response
	if err := json.NewDecoder(resp.Body).Decode(&owm); err != nil {
		return domain.Observation{}, fmt.Errorf("decode response: %w", err)
	}

	if owm.Cod != http.StatusOK {
		return domain.Observation{}, &domain.ProviderError{Code: int(owm.Cod), Message: owm.Message}
	}

	return owm.toObservation(city), nil
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	switch domain.ErrorKind(err) {
	case "transport":
		return "transport_error"
	case "application":
		return "application_error"
	default:
		return "error"
	}
}
