// Package metrics exposes Prometheus counters for analyses, rejections,
// generated documents and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wealthcheck"

// Recorder owns a private registry. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	analyses     *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	documents    *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates a Recorder with Go and process collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Completed analyses by risk tier.",
		}, []string{"risk_tier"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Analyses rejected by input validation, by error code.",
		}, []string{"code"}),
		documents: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_bytes",
			Help:      "Size of rendered documents.",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 10),
		}, []string{"format"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
		r.analyses, r.rejections, r.documents, r.httpRequests, r.httpDuration,
	)
	return r
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveAnalysis counts a completed analysis.
func (r *Recorder) ObserveAnalysis(riskTier string) {
	if r == nil {
		return
	}
	r.analyses.WithLabelValues(riskTier).Inc()
}

// ObserveRejection counts an analysis rejected with the given error code.
func (r *Recorder) ObserveRejection(code string) {
	if r == nil {
		return
	}
	r.rejections.WithLabelValues(code).Inc()
}

// ObserveDocument records the size of a rendered document ("pdf", "svg", "text").
func (r *Recorder) ObserveDocument(format string, size int) {
	if r == nil {
		return
	}
	r.documents.WithLabelValues(format).Observe(float64(size))
}

// Middleware records request counts and latency per matched route.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		r.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
