package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// SubmissionCounter counts test submissions by outcome: scored, already_taken, level_missing, error.
	SubmissionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_submissions_total",
			Help: "Placement test submissions by outcome",
		},
		[]string{"outcome"},
	)

	LevelAssignedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_levels_assigned_total",
			Help: "Levels assigned by placement tests, by level order",
		},
		[]string{"order"},
	)

	AssembledQuestions = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "placement_assembled_questions",
			Help:    "Number of questions in assembled placement tests",
			Buckets: []float64{0, 5, 10, 15, 20, 25, 30},
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(SubmissionCounter)
		prometheus.MustRegister(LevelAssignedCounter)
		prometheus.MustRegister(AssembledQuestions)
	})
}

func ObserveSubmission(outcome string) {
	SubmissionCounter.WithLabelValues(outcome).Inc()
}

func ObserveLevelAssigned(order int) {
	LevelAssignedCounter.WithLabelValues(strconv.Itoa(order)).Inc()
}

func ObserveAssembly(questions int) {
	AssembledQuestions.Observe(float64(questions))
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
