package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the decoders.
type Metrics struct {
	ReportsDecoded *prometheus.CounterVec // labels: kind={metar,taf}
	DecodeAborts   *prometheus.CounterVec // labels: kind={metar,taf}, reason={bad_station,empty}

	DecodeDuration  *prometheus.HistogramVec // labels: kind={metar,taf}
	SanitizerEdits  prometheus.Histogram
	ForecastPeriods prometheus.Histogram
}

// NewMetrics creates and registers all decoder metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ReportsDecoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flightwx",
			Name:      "reports_decoded_total",
			Help:      "Total reports successfully decoded by kind.",
		}, []string{"kind"}),
		DecodeAborts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flightwx",
			Name:      "decode_aborts_total",
			Help:      "Reports rejected before parsing, by kind and reason.",
		}, []string{"kind", "reason"}),
		DecodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flightwx",
			Name:      "decode_duration_seconds",
			Help:      "Duration of a complete sanitize-tokenize-extract cycle.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}, []string{"kind"}),
		SanitizerEdits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flightwx",
			Name:      "sanitizer_edits",
			Help:      "Number of removals and replacements the sanitizer made per report.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
		ForecastPeriods: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flightwx",
			Name:      "forecast_periods",
			Help:      "Number of validity periods per decoded forecast.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10, 12},
		}),
	}

	prometheus.MustRegister(
		m.ReportsDecoded,
		m.DecodeAborts,
		m.DecodeDuration,
		m.SanitizerEdits,
		m.ForecastPeriods,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ReportsDecoded:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flightwx", Name: "reports_decoded_total"}, []string{"kind"}),
		DecodeAborts:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flightwx", Name: "decode_aborts_total"}, []string{"kind", "reason"}),
		DecodeDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "flightwx", Name: "decode_duration_seconds"}, []string{"kind"}),
		SanitizerEdits:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "flightwx", Name: "sanitizer_edits"}),
		ForecastPeriods: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "flightwx", Name: "forecast_periods"}),
	}
}
