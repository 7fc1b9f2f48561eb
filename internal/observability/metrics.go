package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus metrics for the HTTP surface and the
// placement engine.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	MarkersPlaced  prometheus.Gauge
	ItemsSkipped   *prometheus.CounterVec
	UpstreamErrors *prometheus.CounterVec
}

// NewCollector registers the metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "globex_http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by route, method, and status code.",
	}, []string{"route", "method", "code"}), "globex_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "globex_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"route", "method"}), "globex_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	placed, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "globex_markers_placed",
		Help: "Number of markers in the most recently placed batch.",
	}), "globex_markers_placed")
	if err != nil {
		return nil, err
	}

	skipped, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "globex_items_skipped_total",
		Help: "Items that produced no marker, labeled by reason.",
	}, []string{"reason"}), "globex_items_skipped_total")
	if err != nil {
		return nil, err
	}

	upstream, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "globex_upstream_errors_total",
		Help: "Failed calls to external providers, labeled by provider.",
	}, []string{"provider"}), "globex_upstream_errors_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:       gatherer,
		HTTPRequests:   requests,
		HTTPDurations:  durations,
		MarkersPlaced:  placed,
		ItemsSkipped:   skipped,
		UpstreamErrors: upstream,
	}, nil
}

// Middleware records request counts and durations. Requests are labeled
// by their route template so path parameters do not explode cardinality.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		if c == nil {
			return
		}
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method

		c.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.HTTPDurations.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// BatchPlaced sets the placed-markers gauge.
func (c *Collector) BatchPlaced(markers int) {
	if c == nil {
		return
	}
	c.MarkersPlaced.Set(float64(markers))
}

func (c *Collector) ItemSkipped(reason string) {
	if c == nil {
		return
	}
	c.ItemsSkipped.WithLabelValues(reason).Inc()
}

func (c *Collector) UpstreamError(provider string) {
	if c == nil {
		return
	}
	c.UpstreamErrors.WithLabelValues(provider).Inc()
}

// register adds collector to reg, returning the already registered
// collector of the same type when one exists.
func register[T prometheus.Collector](reg prometheus.Registerer, collector T, name string) (T, error) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return collector, nil
}
