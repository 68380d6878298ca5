package prometheus

// AppMetrics holds every metric the platform records, registered once at
// startup and injected where needed.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Analysis pipeline
	AnalysesTotal       CounterVec // labels: risk_level, source
	AnalysisDuration    HistogramVec
	DocumentsTruncated  CounterVec
	ClauseDetections    CounterVec // labels: clause_type
	AnalysisErrorsTotal CounterVec // labels: code

	// Infrastructure
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec
	StoreWritesTotal CounterVec // labels: status
	EventsPublished  CounterVec // labels: topic, status
}

// Default histogram buckets.
var (
	DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	// Analysis is CPU-bound and single-document; sub-second to a few seconds.
	DefaultAnalysisDurationBuckets = []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5}
)

// NewAppMetrics registers all platform metrics on the given collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method")

	m.AnalysesTotal = collector.RegisterCounter("analyses_total", "Completed document analyses", "risk_level", "source")
	m.AnalysisDuration = collector.RegisterHistogram("analysis_duration_seconds", "Document analysis duration", DefaultAnalysisDurationBuckets, "source")
	m.DocumentsTruncated = collector.RegisterCounter("documents_truncated_total", "Documents truncated to the size ceiling")
	m.ClauseDetections = collector.RegisterCounter("clause_detections_total", "Clause detections by type", "clause_type")
	m.AnalysisErrorsTotal = collector.RegisterCounter("analysis_errors_total", "Failed analyses by error code", "code")

	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Assessment cache hits")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Assessment cache misses")
	m.StoreWritesTotal = collector.RegisterCounter("store_writes_total", "Assessment store writes", "status")
	m.EventsPublished = collector.RegisterCounter("events_published_total", "Events published to the message bus", "topic", "status")

	return m
}

//Personal.AI order the ending
