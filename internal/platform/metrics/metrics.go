package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors are package level so services can record without plumbing.
// They are registered once by Init.
var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ledger",
		Name:      "http_in_flight_requests",
		Help:      "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledger",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	balanceComputations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "balance_computations_total",
		Help:      "Account balance computations by kind and outcome.",
	}, []string{"kind", "outcome"})

	aggregationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledger",
		Name:      "aggregation_duration_seconds",
		Help:      "Time spent aggregating account sections.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	aggregatedAccounts = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ledger",
		Name:      "aggregated_accounts",
		Help:      "Number of accounts considered per section aggregation.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	clearingOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "clearing_attempts_total",
		Help:      "Clearing attempts by outcome.",
	}, []string{"outcome"})
)

// Init registers every collector with reg, or with the default registry when reg is nil.
func Init(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(httpInFlight, httpRequestsTotal, httpRequestDuration,
		balanceComputations, aggregationDuration, aggregatedAccounts, clearingOutcomes)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// GinMiddleware records request count, latency and in-flight gauge.
// Routes are labelled by their pattern to keep cardinality bounded.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpInFlight.Inc()
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		httpInFlight.Dec()
	}
}

// ObserveBalance counts one opening or closing balance computation.
func ObserveBalance(kind string, err error) {
	balanceComputations.WithLabelValues(kind, outcome(err)).Inc()
}

// ObserveAggregation records how long an aggregation took and how many accounts it covered.
func ObserveAggregation(operation string, started time.Time, accounts int) {
	aggregationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	if accounts >= 0 {
		aggregatedAccounts.Observe(float64(accounts))
	}
}

// ObserveClearing counts one clearing attempt.
func ObserveClearing(err error) {
	clearingOutcomes.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
