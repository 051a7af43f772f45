package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal         metric.Int64Counter
	HTTPRequestDuration       metric.Float64Histogram
	ItinerariesGeneratedTotal metric.Int64Counter
	ChatMessagesTotal         metric.Int64Counter
	CostEstimatesTotal        metric.Int64Counter
	UpstreamErrorsTotal       metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments once, using the
// meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("safarnama")
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests"),
		)
		logIfErr("http_requests_total", err)

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("HTTP request latency in seconds"),
			metric.WithUnit("s"),
		)
		logIfErr("http_request_duration_seconds", err)

		m.ItinerariesGeneratedTotal, err = meter.Int64Counter(
			"itineraries_generated_total",
			metric.WithDescription("Total number of itineraries generated and parsed"),
		)
		logIfErr("itineraries_generated_total", err)

		m.ChatMessagesTotal, err = meter.Int64Counter(
			"chat_messages_total",
			metric.WithDescription("Total number of chat messages answered"),
		)
		logIfErr("chat_messages_total", err)

		m.CostEstimatesTotal, err = meter.Int64Counter(
			"cost_estimates_total",
			metric.WithDescription("Total number of trip cost estimates served"),
		)
		logIfErr("cost_estimates_total", err)

		m.UpstreamErrorsTotal, err = meter.Int64Counter(
			"upstream_errors_total",
			metric.WithDescription("Failures talking to external services"),
		)
		logIfErr("upstream_errors_total", err)

		appMetrics = m
	})
}

// Get returns the initialized metrics, or nil before InitAppMetrics ran.
func Get() *AppMetrics {
	return appMetrics
}

func logIfErr(name string, err error) {
	if err != nil {
		log.Printf("failed to create %s instrument: %v", name, err)
	}
}
