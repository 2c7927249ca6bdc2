package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lexai-legal/lexai-backend/pkg/telemetry"
)

// HTTPMetrics holds the request metrics recorded by the Metrics middleware
type HTTPMetrics struct {
	Requests *telemetry.Counter
	Duration *telemetry.Histogram
}

// NewHTTPMetrics creates the standard HTTP request metrics
func NewHTTPMetrics() (*HTTPMetrics, error) {
	requests, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "http.server.requests",
		Description: "Total number of HTTP requests",
		Unit:        "{request}",
	})
	if err != nil {
		return nil, err
	}

	duration, err := telemetry.NewHistogram(telemetry.MetricOpts{
		Name:        "http.server.duration",
		Description: "HTTP request duration",
		Unit:        "ms",
	})
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{Requests: requests, Duration: duration}, nil
}

// Metrics creates a middleware that records request count and latency
// per method, route, and status code
func Metrics(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		attrs := []attribute.KeyValue{
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.status_code", strconv.Itoa(c.Writer.Status())),
		}

		ctx := c.Request.Context()
		m.Requests.Inc(ctx, attrs...)
		m.Duration.Record(ctx, float64(time.Since(start).Milliseconds()), attrs...)
	}
}
