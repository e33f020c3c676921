// Package requestmetrics records the count and latency of TMDB API requests, labelled by endpoint.
//
// Metrics plugs into a transport chain built with github.com/clambin/go-common/httputils/roundtripper:
//
//	rt := roundtripper.New(
//		roundtripper.WithLimiter(10),
//		roundtripper.WithRoundTripper(m.Instrument(http.DefaultTransport)),
//	)
package requestmetrics

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var _ prometheus.Collector = &Metrics{}

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New(namespace, subsystem string) *Metrics {
	return &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Number of TMDB API requests",
		}, []string{"endpoint", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of TMDB API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) Measure(req *http.Request, resp *http.Response, err error, duration time.Duration) {
	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	endpoint := Endpoint(req.URL.Path)
	m.requests.WithLabelValues(endpoint, code).Inc()
	m.duration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.requests.Describe(ch)
	m.duration.Describe(ch)
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.requests.Collect(ch)
	m.duration.Collect(ch)
}

// Instrument returns a http.RoundTripper that measures every request performed by next.
func (m *Metrics) Instrument(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &instrumented{next: next, metrics: m}
}

// Log writes the current value of every series to l, one record per series.
func (m *Metrics) Log(l *slog.Logger, level slog.Level) {
	r := prometheus.NewRegistry()
	if err := r.Register(m); err != nil {
		l.Warn("failed to register request metrics", "err", err)
		return
	}
	families, err := r.Gather()
	if err != nil {
		l.Warn("failed to collect request metrics", "err", err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			attrs := []any{"metric", family.GetName()}
			for _, label := range metric.GetLabel() {
				attrs = append(attrs, label.GetName(), label.GetValue())
			}
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				attrs = append(attrs, "value", metric.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				attrs = append(attrs, "count", h.GetSampleCount(), "sum", h.GetSampleSum())
			}
			l.Log(context.Background(), level, "tmdb request metrics", attrs...)
		}
	}
}

// Endpoint replaces the numeric ids in path with {id}, so requests for different movies share a label value.
// The leading API version ("/3") is kept.
func Endpoint(path string) string {
	parts := strings.Split(path, "/")
	for i := 2; i < len(parts); i++ {
		if _, err := strconv.Atoi(parts[i]); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}

var _ http.RoundTripper = &instrumented{}

type instrumented struct {
	next    http.RoundTripper
	metrics *Metrics
}

func (i *instrumented) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := i.next.RoundTrip(req)
	i.metrics.Measure(req, resp, err, time.Since(start))
	return resp, err
}
