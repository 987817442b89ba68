package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lumiere-guest-api/internal/pkg/metrics"
)

// MetricsMiddleware observes request latency per route. The route template is
// used rather than the raw path so booking references and booking IDs do not
// explode the label cardinality.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(status),
		).Observe(time.Since(start).Seconds())
		if status >= http.StatusInternalServerError {
			m.ErrorsCount.WithLabelValues(c.Request.Method + " " + path).Inc()
		}
	}
}
