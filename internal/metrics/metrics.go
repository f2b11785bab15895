package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "marketplace"

// Collector owns the HTTP and listing metrics of one server.
type Collector struct {
	httpDuration *prometheus.HistogramVec
	httpTotal    *prometheus.CounterVec
	listingRuns  *prometheus.CounterVec
	listingTotal *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path", "status"},
		),
		httpTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		listingRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "listing_runs_total",
				Help:      "Listing pipeline runs per screen",
			},
			[]string{"screen", "sort"},
		),
		listingTotal: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "listing_matched_items",
				Help:      "Items left after filtering, per screen",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"screen"},
		),
	}
	reg.MustRegister(c.httpDuration, c.httpTotal, c.listingRuns, c.listingTotal)
	return c
}

// Middleware records request duration and count by route pattern.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		c.httpDuration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		c.httpTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}

// ObserveListing counts one pipeline run. sort is "" for input order.
func (c *Collector) ObserveListing(screen, sort string, total int) {
	if c == nil {
		return
	}
	if sort == "" {
		sort = "none"
	}
	c.listingRuns.WithLabelValues(screen, sort).Inc()
	c.listingTotal.WithLabelValues(screen).Observe(float64(total))
}
