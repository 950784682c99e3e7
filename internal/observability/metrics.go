package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// disaster information service.
type Metrics struct {
	// Translation pipeline metrics.
	Translations     *prometheus.CounterVec // labels: source={identity,static,template,cache,ai,fallback}
	CacheLookups     *prometheus.CounterVec // labels: result={hit,miss}
	CacheFlushes     *prometheus.CounterVec // labels: outcome={success,error}
	CacheEntries     prometheus.Gauge
	AIRequests       *prometheus.CounterVec   // labels: provider={gemini,claude}, outcome={success,error,empty}
	AIRequestSeconds *prometheus.HistogramVec // labels: provider={gemini,claude}
	AIEnabled        prometheus.Gauge

	// Upstream feed metrics.
	FeedRequests    *prometheus.CounterVec   // labels: upstream={jma,p2pquake}, outcome={success,error}
	FeedAPIDuration *prometheus.HistogramVec // labels: upstream={jma,p2pquake}

	// HTTP and alert delivery metrics.
	HTTPRequests     *prometheus.CounterVec   // labels: route, status
	HTTPDuration     *prometheus.HistogramVec // labels: route
	AlertsPublished  prometheus.Counter
	WatcherRunning   prometheus.Gauge
	WatchCycleErrors prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_info",
			Name:      "translations_total",
			Help:      "Translation resolutions by source tier.",
		}, []string{"source"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_info",
			Name:      "translation_cache_lookups_total",
			Help:      "Translation cache lookups by result.",
		}, []string{"result"}),
		CacheFlushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_info",
			Name:      "translation_cache_flushes_total",
			Help:      "Translation cache flushes to disk by outcome.",
		}, []string{"outcome"}),
		CacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "disaster_info",
			Name:      "translation_cache_entries",
			Help:      "Entries currently held in the translation cache.",
		}),
		AIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_info",
			Name:      "ai_requests_total",
			Help:      "AI provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		AIRequestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "disaster_info",
			Name:      "ai_request_duration_seconds",
			Help:      "AI provider request duration in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}, []string{"provider"}),
		AIEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "disaster_info",
			Name:      "ai_enabled",
			Help:      "1 when an AI provider credential is configured, 0 otherwise.",
		}),
		FeedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_info",
			Name:      "feed_requests_total",
			Help:      "Upstream feed requests by upstream and outcome.",
		}, []string{"upstream", "outcome"}),
		FeedAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "disaster_info",
			Name:      "feed_api_duration_seconds",
			Help:      "Upstream feed request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"upstream"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_info",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "disaster_info",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by route.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"route"}),
		AlertsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "disaster_info",
			Name:      "alerts_published_total",
			Help:      "Alert events written to the sink topic.",
		}),
		WatcherRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "disaster_info",
			Name:      "watcher_running",
			Help:      "1 when the disaster watcher is active, 0 when shut down.",
		}),
		WatchCycleErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "disaster_info",
			Name:      "watch_cycle_errors_total",
			Help:      "Watcher cycles that failed to fetch or publish.",
		}),
	}

	prometheus.MustRegister(
		m.Translations,
		m.CacheLookups,
		m.CacheFlushes,
		m.CacheEntries,
		m.AIRequests,
		m.AIRequestSeconds,
		m.AIEnabled,
		m.FeedRequests,
		m.FeedAPIDuration,
		m.HTTPRequests,
		m.HTTPDuration,
		m.AlertsPublished,
		m.WatcherRunning,
		m.WatchCycleErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Translations:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "disaster_info", Name: "translations_total"}, []string{"source"}),
		CacheLookups:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "disaster_info", Name: "translation_cache_lookups_total"}, []string{"result"}),
		CacheFlushes:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "disaster_info", Name: "translation_cache_flushes_total"}, []string{"outcome"}),
		CacheEntries:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "disaster_info", Name: "translation_cache_entries"}),
		AIRequests:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "disaster_info", Name: "ai_requests_total"}, []string{"provider", "outcome"}),
		AIRequestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "disaster_info", Name: "ai_request_duration_seconds"}, []string{"provider"}),
		AIEnabled:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "disaster_info", Name: "ai_enabled"}),
		FeedRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "disaster_info", Name: "feed_requests_total"}, []string{"upstream", "outcome"}),
		FeedAPIDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "disaster_info", Name: "feed_api_duration_seconds"}, []string{"upstream"}),
		HTTPRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "disaster_info", Name: "http_requests_total"}, []string{"route", "status"}),
		HTTPDuration:     prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "disaster_info", Name: "http_request_duration_seconds"}, []string{"route"}),
		AlertsPublished:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "disaster_info", Name: "alerts_published_total"}),
		WatcherRunning:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "disaster_info", Name: "watcher_running"}),
		WatchCycleErrors: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "disaster_info", Name: "watch_cycle_errors_total"}),
	}
}
