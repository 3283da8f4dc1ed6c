package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngine(m *Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})
	r.POST("/users", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusInternalServerError)
	})
	return r
}

func TestMiddleware_CountsByRouteAndStatus(t *testing.T) {
	m := New()
	r := setupEngine(m)

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/users", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/users", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/users", http.MethodPost, "500")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues(unmatchedRoute, http.MethodGet, "404")))
}

func TestHandler_ServesMetrics(t *testing.T) {
	m := New()
	r := setupEngine(m)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users", nil))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "users_service_http_requests_total")
	assert.Contains(t, string(body), "users_service_http_request_duration_seconds")
	assert.Contains(t, string(body), "go_goroutines")
}
