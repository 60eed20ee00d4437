package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the prometheus registry for the menu service
type Collector struct {
	registry *prometheus.Registry

	importedItems   *prometheus.CounterVec
	skippedRows     *prometheus.CounterVec
	searchQueries   prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	importedItems := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_items_imported_total",
			Help: "Items produced by menu imports",
		},
		[]string{"source"},
	)

	skippedRows := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_rows_skipped_total",
			Help: "Source rows dropped during imports",
		},
		[]string{"source"},
	)

	searchQueries := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "menu_search_queries_total",
			Help: "Search queries served",
		},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menu_request_duration_seconds",
			Help:    "Time taken to serve API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	registry.MustRegister(importedItems, skippedRows, searchQueries, requestDuration)

	return &Collector{
		registry:        registry,
		importedItems:   importedItems,
		skippedRows:     skippedRows,
		searchQueries:   searchQueries,
		requestDuration: requestDuration,
	}
}

// RecordImport records how many items an import produced and how many
// source rows were dropped.
func (c *Collector) RecordImport(source string, count, skipped int) {
	c.importedItems.WithLabelValues(source).Add(float64(count))
	c.skippedRows.WithLabelValues(source).Add(float64(skipped))
}

// RecordSearch counts one search query.
func (c *Collector) RecordSearch() {
	c.searchQueries.Inc()
}

// RecordRequest records the duration of one API request.
func (c *Collector) RecordRequest(path, method string, elapsed time.Duration) {
	c.requestDuration.WithLabelValues(path, method).Observe(elapsed.Seconds())
}

// Handler returns the scrape handler for the metrics server.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
