// Package lottie loads Lottie animation documents from the asset host.
package lottie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/cache"
	"github.com/couchcryptid/weather-advisory-service/internal/observability"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxDocumentBytes bounds a single animation document.
const maxDocumentBytes = 4 << 20

var errInvalidDocument = errors.New("animation is not valid JSON")

// Loader implements domain.AnimationLoader. Documents are cached by URL for
// the life of the process.
type Loader struct {
	httpClient *http.Client
	cache      *cache.LRU[string, json.RawMessage]
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewLoader creates a loader holding up to maxEntries documents.
func NewLoader(timeout time.Duration, maxEntries int, metrics *observability.Metrics, logger *slog.Logger) *Loader {
	return &Loader{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cache:   cache.New[string, json.RawMessage](maxEntries, 0, nil),
		metrics: metrics,
		logger:  logger,
	}
}

// LoadAnimation returns the animation document at url.
func (l *Loader) LoadAnimation(ctx context.Context, url string) (json.RawMessage, error) {
	if doc, ok := l.cache.Get(url); ok {
		l.metrics.AssetFetches.WithLabelValues("cached").Inc()
		return doc, nil
	}

	doc, err := l.fetch(ctx, url)
	if err != nil {
		l.metrics.AssetFetches.WithLabelValues("error").Inc()
		l.logger.Debug("animation load failed", "url", url, "error", err)
		return nil, err
	}

	l.metrics.AssetFetches.WithLabelValues("success").Inc()
	l.cache.Put(url, doc)
	return doc, nil
}

func (l *Loader) fetch(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("animation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("animation host returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("read animation: %w", err)
	}
	if !json.Valid(body) {
		return nil, errInvalidDocument
	}
	return json.RawMessage(body), nil
}
