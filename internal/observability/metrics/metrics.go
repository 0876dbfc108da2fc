package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	Empty                    Outcome       = "empty"
	Inactive                 Outcome       = "inactive"
	Cancelled                Outcome       = "cancelled"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var defaultHistogramBucketsSeconds = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

// collectors are created eagerly so recording before Init is a no-op for the
// scrape endpoint instead of a nil dereference
var (
	once          sync.Once
	metricsRouter *chi.Mux

	// client requests are the ones sending to other service
	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	queueConsumedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_consumed_messages_total",
			Help: "Messages consumed from the transactions queue by kind and status",
		},
		[]string{"kind", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	fetchDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "market_fetch_duration_seconds",
			Help:    "Market fetch durations in seconds by source and outcome.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"guid", "outcome"},
	)

	marketReliabilityGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "market_reliability",
			Help: "Last recorded reliability ratio per source",
		},
		[]string{"guid"},
	)

	aggregationMarketsGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "aggregation_markets",
			Help: "Markets seen by the last aggregation run split by state",
		},
		[]string{"state"},
	)

	observerQueueDepthGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "observer_queue_depth",
			Help: "Items waiting in the observer queue",
		},
		[]string{"observer"},
	)

	observerItemsGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "observer_items",
			Help: "Process lifetime observer counters by result",
		},
		[]string{"observer", "result"},
	)

	chainEnergyFeeGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tron_energy_fee_sun",
			Help: "Last value of the energy fee chain parameter",
		},
	)

	fetchRateLimitWaitCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_fetch_rate_limit_waits_total",
			Help: "Outbound source requests delayed by the per-source rate limiter",
		},
		[]string{"guid"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Info().Msgf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

func registerMetrics() {
	prometheus.MustRegister(
		clientRequestDurationHistogram,
		queueSendErrorCounter,
		queueConsumedCounter,
		pollerDurationHistogram,
		fetchDurationHistogram,
		marketReliabilityGauge,
		aggregationMarketsGauge,
		observerQueueDepthGauge,
		observerItemsGauge,
		chainEnergyFeeGauge,
		fetchRateLimitWaitCounter,
		dbLatency,
	)
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordFetch(guid string, d time.Duration, outcome Outcome) {
	fetchDurationHistogram.WithLabelValues(guid, outcome.String()).Observe(d.Seconds())
}

func RecordRateLimitWait(guid string) {
	fetchRateLimitWaitCounter.WithLabelValues(guid).Inc()
}

func RecordMarketReliability(guid string, reliability float64) {
	marketReliabilityGauge.WithLabelValues(guid).Set(reliability)
}

func RecordAggregation(active, changed int) {
	aggregationMarketsGauge.WithLabelValues("active").Set(float64(active))
	aggregationMarketsGauge.WithLabelValues("changed").Set(float64(changed))
}

func RecordObserverStats(observer string, queueDepth int, processed, errors, dropped uint64) {
	observerQueueDepthGauge.WithLabelValues(observer).Set(float64(queueDepth))
	observerItemsGauge.WithLabelValues(observer, "processed").Set(float64(processed))
	observerItemsGauge.WithLabelValues(observer, "error").Set(float64(errors))
	observerItemsGauge.WithLabelValues(observer, "dropped").Set(float64(dropped))
}

func RecordEnergyFee(sun int64) {
	chainEnergyFeeGauge.Set(float64(sun))
}

func RecordQueueConsumed(kind string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	queueConsumedCounter.WithLabelValues(kind, status.String()).Inc()
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
