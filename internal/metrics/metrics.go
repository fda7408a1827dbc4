// Package metrics handles Prometheus metrics initialization and system monitoring.
package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger replaces the package-level logger.
func SetLogger(l *logrus.Logger) { log = l }

// Prometheus metrics - exported for use by other packages.
var (
	ResolutionsTotal       *prometheus.CounterVec
	ResolutionMissesTotal  prometheus.Counter
	ExtensionLookupsTotal  prometheus.Counter
	MatchesTotal           *prometheus.CounterVec
	ParseErrorsTotal       prometheus.Counter
	PlatformLookupDuration prometheus.Histogram
	CacheHitsTotal         prometheus.Counter
	CacheMissesTotal       prometheus.Counter
	RequestsTotal          *prometheus.CounterVec
	MemoryUsage            prometheus.Gauge
	CpuUsage               prometheus.Gauge
	Goroutines             prometheus.Gauge
	PrewarmTasksTotal      prometheus.Counter
)

// InitMetrics registers all Prometheus metrics.
func InitMetrics() {
	ResolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mime_resolutions_total",
		Help: "Total number of successful extension resolutions.",
	}, []string{"mode"})
	ResolutionMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mime_resolution_misses_total",
		Help: "Total number of extension resolutions with no mapping.",
	})
	ExtensionLookupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mime_extension_lookups_total",
		Help: "Total number of type-to-extensions enumerations.",
	})
	MatchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mime_matches_total",
		Help: "Total number of pattern match evaluations.",
	}, []string{"result"})
	ParseErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mime_parse_errors_total",
		Help: "Total number of malformed type strings rejected by the parser.",
	})
	PlatformLookupDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "platform_lookup_duration_seconds",
		Help:    "Duration of uncached platform registry lookups in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "platform_cache_hits_total",
		Help: "Total number of platform registry cache hits.",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "platform_cache_misses_total",
		Help: "Total number of platform registry cache misses.",
	})
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path"})
	MemoryUsage = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "memory_usage_bytes",
		Help: "Current memory usage in bytes.",
	})
	CpuUsage = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cpu_usage_percent",
		Help: "Current CPU usage percentage.",
	})
	Goroutines = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "goroutines",
		Help: "Number of running goroutines.",
	})
	PrewarmTasksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "prewarm_tasks_total",
		Help: "Total number of completed cache pre-warm tasks.",
	})

	prometheus.MustRegister(
		ResolutionsTotal,
		ResolutionMissesTotal,
		ExtensionLookupsTotal,
		MatchesTotal,
		ParseErrorsTotal,
		PlatformLookupDuration,
		CacheHitsTotal,
		CacheMissesTotal,
		RequestsTotal,
		MemoryUsage,
		CpuUsage,
		Goroutines,
		PrewarmTasksTotal,
	)

	log.Info("Prometheus metrics initialized")
}

// UpdateSystemMetrics updates memory, CPU, and goroutine metrics.
func UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	MemoryUsage.Set(float64(m.Alloc))
	Goroutines.Set(float64(runtime.NumGoroutine()))

	cpuPercent, err := cpu.Percent(time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		CpuUsage.Set(cpuPercent[0])
	}
}
