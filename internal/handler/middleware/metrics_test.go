//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"lumiere-guest-api/internal/handler/middleware"
	"lumiere-guest-api/internal/pkg/metrics"
)

// promauto registers against the global registry, so the package shares one
// metrics instance across tests.
var testMetrics = metrics.NewMetrics("middleware_test")

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(middleware.MetricsMiddleware(testMetrics))
	engine.GET("/rooms/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	engine.POST("/bookings/submit", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})

	perform := func(method, path string) {
		req := httptest.NewRequest(method, path, nil)
		engine.ServeHTTP(httptest.NewRecorder(), req)
	}

	t.Run("counts server errors per route template", func(t *testing.T) {
		before := testutil.ToFloat64(testMetrics.ErrorsCount.WithLabelValues("POST /bookings/submit"))
		perform(http.MethodPost, "/bookings/submit")

		after := testutil.ToFloat64(testMetrics.ErrorsCount.WithLabelValues("POST /bookings/submit"))
		assert.Equal(t, before+1, after)
	})

	t.Run("successful requests do not count as errors", func(t *testing.T) {
		perform(http.MethodGet, "/rooms/deluxe-terrace")

		assert.Zero(t, testutil.ToFloat64(testMetrics.ErrorsCount.WithLabelValues("GET /rooms/:id")))
	})
}
