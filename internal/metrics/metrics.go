// Package metrics exposes Prometheus collectors for the dashboard API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shenikar/bodycam_dashboard/internal/models"
)

const namespace = "bodycam"

// Collector holds the registry and every metric the API reports.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	complaints      *prometheus.CounterVec
	classifications *prometheus.CounterVec
	remoteDuration  *prometheus.HistogramVec
}

// New constructs a collector with its own registry.
func New() (*Collector, error) {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution for inbound HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests.",
		}, []string{"method", "path", "status"}),
		complaints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "complaint_submissions_total",
			Help:      "Complaint submissions by outcome.",
		}, []string{"result"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incident_classifications_total",
			Help:      "Incident records classified by severity.",
		}, []string{"severity"}),
		remoteDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "call_duration_seconds",
			Help:      "Latency of calls to the hosted persistence and auth service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "result"}),
	}

	for _, col := range []prometheus.Collector{
		c.requestDuration, c.requestTotal, c.complaints, c.classifications, c.remoteDuration,
		collectors.NewGoCollector(),
	} {
		if err := registry.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Handler returns an HTTP handler for exposing Prometheus metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency. The route template is used as the path label.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		c.requestTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		c.requestDuration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

func (c *Collector) ObserveComplaint(result string) {
	if c == nil {
		return
	}
	c.complaints.WithLabelValues(result).Inc()
}

func (c *Collector) ObserveSeverity(s models.Severity) {
	if c == nil {
		return
	}
	c.classifications.WithLabelValues(s.String()).Inc()
}

// ObserveRemote records one call to the hosted service.
func (c *Collector) ObserveRemote(operation string, start time.Time, err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.remoteDuration.WithLabelValues(operation, result).Observe(time.Since(start).Seconds())
}
