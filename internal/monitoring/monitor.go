package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP and domain collectors of the service
type Metrics struct {
	registry *prometheus.Registry

	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	ParticipantsRegistered prometheus.Counter
	AssessmentsSubmitted   prometheus.Counter
	TotalScores            prometheus.Histogram
}

// NewMetrics builds the collectors on a private registry together with the Go and process collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
			},
			[]string{"method", "endpoint"},
		),
		ParticipantsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "assessment_participants_registered_total",
			Help: "Participants registered",
		}),
		AssessmentsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "assessment_submissions_total",
			Help: "Assessments scored and stored",
		}),
		TotalScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "assessment_total_score",
			Help:    "Distribution of total scores (0-100)",
			Buckets: []float64{20, 40, 60, 80, 100},
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestCounter,
		m.RequestDuration,
		m.ParticipantsRegistered,
		m.AssessmentsSubmitted,
		m.TotalScores,
	)
	return m
}

// Registry exposes the underlying registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveRegistration() {
	m.ParticipantsRegistered.Inc()
}

func (m *Metrics) ObserveSubmission(totalScore int) {
	m.AssessmentsSubmitted.Inc()
	m.TotalScores.Observe(float64(totalScore))
}

func (m *Metrics) MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		m.RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) PrometheusHandler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
