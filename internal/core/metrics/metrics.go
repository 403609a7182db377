// Package metrics collects Prometheus metrics for console operations.
package metrics

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so embedding programs keep their own
// default registry clean.
type Collector struct {
	registry      *prometheus.Registry
	ruleSaves     *prometheus.CounterVec
	reviews       *prometheus.CounterVec
	queryDuration prometheus.Histogram
	queryFailures prometheus.Counter
	logger        *slog.Logger
}

// NewCollector creates a collector with all console metrics registered.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		ruleSaves: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "frauddesk_rule_saves_total",
			Help: "Rule save requests by result",
		}, []string{"result"}),
		reviews: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "frauddesk_reviews_submitted_total",
			Help: "Transaction review submissions by result",
		}, []string{"result"}),
		queryDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "frauddesk_query_duration_seconds",
			Help:    "Listing query round-trip time",
			Buckets: prometheus.DefBuckets,
		}),
		queryFailures: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "frauddesk_query_failures_total",
			Help: "Listing queries that returned an error",
		}),
		logger: logger,
	}
}

// RecordRuleSave counts one save attempt by outcome.
func (c *Collector) RecordRuleSave(err error) {
	c.ruleSaves.WithLabelValues(result(err)).Inc()
}

// RecordReview counts one review submission by outcome.
func (c *Collector) RecordReview(err error) {
	c.reviews.WithLabelValues(result(err)).Inc()
}

// ObserveQuery records one listing query round trip.
func (c *Collector) ObserveQuery(elapsed time.Duration, err error) {
	c.queryDuration.Observe(elapsed.Seconds())
	if err != nil {
		c.queryFailures.Inc()
	}
}

// Handler exposes the registry for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// StartServer serves the scrape handler at /metrics on addr for as long as
// the process runs. Returns the server and its bound address; the caller
// shuts it down with Close.
func (c *Collector) StartServer(addr string) (*http.Server, string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Handler: mux}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.logger.Error("metrics server stopped", slog.String("error", err.Error()))
		}
	}()
	return srv, ln.Addr().String(), nil
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
