package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_dashboard"

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	Renders          *prometheus.CounterVec // labels: outcome={success,invalid_request,transport_error,application_error,internal_error}
	RenderDuration   prometheus.Histogram
	AdvisoriesIssued *prometheus.CounterVec // labels: advisory
	OutfitItems      *prometheus.CounterVec // labels: item

	// Weather provider metrics.
	ProviderRequests *prometheus.CounterVec // labels: outcome={success,transport_error,application_error,error}
	ProviderCache    *prometheus.CounterVec // labels: result={hit,miss}
	ProviderDuration prometheus.Histogram

	// Animation asset metrics.
	AssetFetches  *prometheus.CounterVec // labels: outcome={success,cached,error}
	AssetsEnabled prometheus.Gauge

	// Report publishing metrics.
	ReportsPublished prometheus.Counter
	PublishErrors    prometheus.Counter
	PublishEnabled   prometheus.Gauge
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.Renders,
		m.RenderDuration,
		m.AdvisoriesIssued,
		m.OutfitItems,
		m.ProviderRequests,
		m.ProviderCache,
		m.ProviderDuration,
		m.AssetFetches,
		m.AssetsEnabled,
		m.ReportsPublished,
		m.PublishErrors,
		m.PublishEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Dashboard render passes by outcome.",
		}, []string{"outcome"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of a complete fetch-evaluate-render pass.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		AdvisoriesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advisories_issued_total",
			Help:      "Hazard advisories attached to rendered reports.",
		}, []string{"advisory"}),
		OutfitItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outfit_items_total",
			Help:      "Outfit suggestions attached to rendered reports.",
		}, []string{"item"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Weather provider API requests by outcome.",
		}, []string{"outcome"}),
		ProviderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_cache_total",
			Help:      "Observation cache lookups by result.",
		}, []string{"result"}),
		ProviderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_api_duration_seconds",
			Help:      "Weather provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		AssetFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_fetches_total",
			Help:      "Animation asset loads by outcome.",
		}, []string{"outcome"}),
		AssetsEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "assets_enabled",
			Help:      "1 when animation assets are loaded, 0 otherwise.",
		}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_published_total",
			Help:      "Reports written to the advisory topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Failed report publications.",
		}),
		PublishEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "publish_enabled",
			Help:      "1 when reports are published to Kafka, 0 otherwise.",
		}),
	}
}
