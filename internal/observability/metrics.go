package observability

import "github.com/prometheus/client_golang/prometheus"

// LLMBuckets defines histogram buckets suited for inference latencies,
// ranging from 100ms to 120s.
//
//nolint:gochecknoglobals // Prometheus collectors are package-level by convention
var LLMBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

//nolint:gochecknoglobals // Prometheus collectors are package-level by convention
var (
	// RequestsTotal counts HTTP requests by method, status class and route.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synexis_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "status", "route"},
	)

	// RequestDuration records HTTP request duration in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "synexis_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: LLMBuckets,
		},
		[]string{"method", "route"},
	)

	// CompletionsTotal counts completions by mode (sync, stream) and outcome.
	CompletionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synexis_completions_total",
			Help: "Completions by mode and status",
		},
		[]string{"mode", "status"},
	)

	// EngineLatency records time spent waiting on the inference engine.
	EngineLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "synexis_engine_latency_seconds",
			Help:    "Engine latency",
			Buckets: LLMBuckets,
		},
		[]string{"mode"},
	)

	// StreamChunksTotal counts fragments delivered to streaming consumers.
	StreamChunksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "synexis_stream_chunks_total",
			Help: "Streamed token fragments",
		},
	)

	// ActiveStreams tracks streams that have started and not yet ended.
	ActiveStreams = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "synexis_streams_active",
			Help: "Active token streams",
		},
	)

	// MediaCacheLookups counts media store lookups by result (hit, miss).
	MediaCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synexis_media_cache_lookups_total",
			Help: "Media cache lookups",
		},
		[]string{"result"},
	)

	// MediaReadsTotal counts media reads from storage by outcome.
	MediaReadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synexis_media_reads_total",
			Help: "Media reads from storage",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		CompletionsTotal,
		EngineLatency,
		StreamChunksTotal,
		ActiveStreams,
		MediaCacheLookups,
		MediaReadsTotal,
	)
}
