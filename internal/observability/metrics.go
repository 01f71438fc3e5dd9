package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "labkit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "labkit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	transformFiles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "labkit",
			Subsystem: "transform",
			Name:      "files_total",
			Help:      "Transform jobs by result.",
		},
		[]string{"result"},
	)
	transformLines = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "labkit",
			Subsystem: "transform",
			Name:      "lines_total",
			Help:      "Lines uppercased and numbered.",
		},
	)
	pricingQuotes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "labkit",
			Subsystem: "pricing",
			Name:      "quotes_total",
			Help:      "Discount quotes by whether a discount applied.",
		},
		[]string{"applied"},
	)
	chartRender = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "labkit",
			Subsystem: "charts",
			Name:      "render_duration_seconds",
			Help:      "Figure render duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			transformFiles,
			transformLines,
			pricingQuotes,
			chartRender,
		)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordTransform counts one job; lines is only added on success.
func RecordTransform(success bool, lines int) {
	RegisterMetrics()
	if !success {
		transformFiles.WithLabelValues("error").Inc()
		return
	}
	transformFiles.WithLabelValues("ok").Inc()
	transformLines.Add(float64(lines))
}

func RecordQuote(applied bool) {
	RegisterMetrics()
	pricingQuotes.WithLabelValues(strconv.FormatBool(applied)).Inc()
}

func RecordChartRender(duration time.Duration) {
	RegisterMetrics()
	chartRender.Observe(duration.Seconds())
}

// WriteTextfile dumps the default registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	RegisterMetrics()
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
