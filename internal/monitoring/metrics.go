package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "trackcore"

// Metrics bundles the pipeline counters. Each instance owns its registry so
// tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	FramesDecoded   prometheus.Counter
	FramesDropped   prometheus.Counter
	FramesTracked   prometheus.Counter
	FramesEncoded   prometheus.Counter
	DecodeErrors    prometheus.Counter
	TrackErrors     prometheus.Counter
	EncodeErrors    prometheus.Counter
	StaleResults    *prometheus.CounterVec
	TrackLatency    prometheus.Histogram
	Connections     prometheus.Gauge
	ConnectFailures prometheus.Counter

	ComponentRSS *prometheus.GaugeVec
	ComponentCPU *prometheus.GaugeVec
}

// NewMetrics creates and registers the pipeline metrics. Go runtime and
// process collectors are registered alongside them.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
	}
	m := &Metrics{
		Registry:        reg,
		FramesDecoded:   counter("frames_decoded_total", "Frames produced by the frame source."),
		FramesDropped:   counter("frames_dropped_total", "Pacing ticks that did not start a decode."),
		FramesTracked:   counter("frames_tracked_total", "Frames merged from a tracking result."),
		FramesEncoded:   counter("frames_encoded_total", "Frames written to the recording sink."),
		DecodeErrors:    counter("decode_errors_total", "Failed decode tasks."),
		TrackErrors:     counter("track_errors_total", "Failed tracking tasks."),
		EncodeErrors:    counter("encode_errors_total", "Failed encode tasks."),
		ConnectFailures: counter("component_connect_failures_total", "Component connections that timed out."),
		StaleResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_results_total",
			Help:      "Task results discarded because the task was aborted.",
		}, []string{"stage"}),
		TrackLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "track_latency_seconds",
			Help:      "Wall time of one tracking step.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}),
		Connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "component_connections",
			Help:      "Live component connections.",
		}),
		ComponentRSS: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "component_rss_bytes",
			Help:      "Resident memory of component child processes.",
		}, []string{"component"}),
		ComponentCPU: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "component_cpu_percent",
			Help:      "CPU usage of component child processes.",
		}, []string{"component"}),
	}
	reg.MustRegister(
		m.FramesDecoded, m.FramesDropped, m.FramesTracked, m.FramesEncoded,
		m.DecodeErrors, m.TrackErrors, m.EncodeErrors, m.ConnectFailures,
		m.StaleResults, m.TrackLatency, m.Connections,
		m.ComponentRSS, m.ComponentCPU,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
