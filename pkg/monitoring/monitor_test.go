package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddlewareRecordsNamespacedMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, 1, testutil.CollectAndCount(RequestCounter, "lms_http_requests_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(RequestDuration, "lms_http_request_duration_seconds"))

	// The gauge returns to zero once the handler finishes.
	assert.Equal(t, float64(0), testutil.ToFloat64(RequestsInFlight))
}
