package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "gwhub_"

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
)

// InitMetrics registers the HTTP metrics. Safe to call more than once.
func InitMetrics() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_latency_seconds",
				Help:    "HTTP request latency in seconds by route and method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		)
		prometheus.MustRegister(httpRequests, httpLatency)
	})
}

// Metrics records per-request counters and latency. Routes are labeled by
// their mux path template so ids do not explode the cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(sw, r)

		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		status := sw.status
		if status == 0 {
			status = http.StatusOK
		}
		if httpRequests != nil {
			httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		}
		if httpLatency != nil {
			httpLatency.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		}
	})
}
