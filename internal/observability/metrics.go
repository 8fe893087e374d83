package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a render run.
type Metrics struct {
	// Feed metrics.
	FeedFetches       *prometheus.CounterVec // labels: outcome={success,error}
	FeedFetchDuration prometheus.Histogram
	FeaturesDecoded   prometheus.Counter

	// Render metrics.
	MarkersRendered *prometheus.CounterVec // labels: bucket={-10-10,...,90+,other}
	FeaturesSkipped prometheus.Counter
	RenderDuration  prometheus.Histogram
	PagePublished   prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakemap",
			Name:      "feed_fetch_total",
			Help:      "Earthquake feed fetches by outcome.",
		}, []string{"outcome"}),
		FeedFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quakemap",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of the feed request including decoding.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		FeaturesDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quakemap",
			Name:      "features_decoded_total",
			Help:      "Total earthquake features decoded from the feed.",
		}),
		MarkersRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakemap",
			Name:      "markers_rendered_total",
			Help:      "Markers placed on the map by depth bucket.",
		}, []string{"bucket"}),
		FeaturesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quakemap",
			Name:      "features_skipped_total",
			Help:      "Features left out of the overlay because their coordinates are not finite.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quakemap",
			Name:      "render_duration_seconds",
			Help:      "Duration of composing and rendering the map page.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		PagePublished: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quakemap",
			Name:      "page_published",
			Help:      "1 once a map page has been published, 0 before.",
		}),
	}

	prometheus.MustRegister(
		m.FeedFetches,
		m.FeedFetchDuration,
		m.FeaturesDecoded,
		m.MarkersRendered,
		m.FeaturesSkipped,
		m.RenderDuration,
		m.PagePublished,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FeedFetches:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quakemap", Name: "feed_fetch_total"}, []string{"outcome"}),
		FeedFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quakemap", Name: "feed_fetch_duration_seconds"}),
		FeaturesDecoded:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quakemap", Name: "features_decoded_total"}),
		MarkersRendered:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quakemap", Name: "markers_rendered_total"}, []string{"bucket"}),
		FeaturesSkipped:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quakemap", Name: "features_skipped_total"}),
		RenderDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quakemap", Name: "render_duration_seconds"}),
		PagePublished:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quakemap", Name: "page_published"}),
	}
}
