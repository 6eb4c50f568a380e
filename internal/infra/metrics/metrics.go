// Package metrics provides Prometheus instrumentation for the HTTP surface.
//
// Wire it up once in the HTTP server:
//
//	e.Use(metrics.Middleware())
//	e.GET("/metrics", metrics.Handler())
//
// Then scrape /metrics from Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// requestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "melospizza",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// requestTotal counts all HTTP requests.
	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "melospizza",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// requestInFlight tracks how many requests are currently being served.
	requestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "melospizza",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	registry = prometheus.NewRegistry()
)

func init() {
	registry.MustRegister(
		requestDuration,
		requestTotal,
		requestInFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Middleware records the built-in HTTP metrics for every request.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestInFlight.Inc()
			defer requestInFlight.Dec()

			err := next(c)

			// Use the route template, not the raw URL, to keep cardinality bounded.
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			requestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			requestTotal.WithLabelValues(method, path, status).Inc()

			return err
		}
	}
}

// Handler exposes the metrics registry in the Prometheus text format.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
