package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes application-level instruments.
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	priceResolutions *prometheus.CounterVec
	quoteSubmissions *prometheus.CounterVec
	rateLimitAllowed *prometheus.CounterVec
	rateLimitDenied  *prometheus.CounterVec
}

// New registers the application instruments on the given registerer.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vestra_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vestra_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		priceResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vestra_price_resolutions_total",
			Help: "Tiered price resolutions by outcome.",
		}, []string{"outcome"}),
		quoteSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vestra_quote_submissions_total",
			Help: "Quote request submissions by result.",
		}, []string{"result"}),
		rateLimitAllowed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vestra_rate_limit_allowed_total",
			Help: "Rate limiter allow decisions by endpoint.",
		}, []string{"endpoint"}),
		rateLimitDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vestra_rate_limit_denied_total",
			Help: "Rate limiter deny decisions by endpoint and reason.",
		}, []string{"endpoint", "reason"}),
	}

	collectors := []prometheus.Collector{
		m.httpRequests,
		m.httpDuration,
		m.priceResolutions,
		m.quoteSubmissions,
		m.rateLimitAllowed,
		m.rateLimitDenied,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}

	return m, nil
}

// RecordHTTPRequest increments request counts and observes latency.
func (m *Metrics) RecordHTTPRequest(route, method, status string, seconds float64) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(seconds)
}

// RecordPriceResolution increments price resolution counts.
// Outcome is "tiered" when a discount applied, "base" otherwise.
func (m *Metrics) RecordPriceResolution(outcome string) {
	if m == nil {
		return
	}
	m.priceResolutions.WithLabelValues(strings.TrimSpace(outcome)).Inc()
}

// RecordQuoteSubmission increments quote submission counts.
func (m *Metrics) RecordQuoteSubmission(result string) {
	if m == nil {
		return
	}
	m.quoteSubmissions.WithLabelValues(strings.TrimSpace(result)).Inc()
}

// RecordRateLimitAllowed increments rate limit allow counts.
func (m *Metrics) RecordRateLimitAllowed(endpoint string) {
	if m == nil {
		return
	}
	m.rateLimitAllowed.WithLabelValues(strings.TrimSpace(endpoint)).Inc()
}

// RecordRateLimitDenied increments rate limit deny counts.
func (m *Metrics) RecordRateLimitDenied(endpoint, reason string) {
	if m == nil {
		return
	}
	m.rateLimitDenied.WithLabelValues(strings.TrimSpace(endpoint), strings.TrimSpace(reason)).Inc()
}
