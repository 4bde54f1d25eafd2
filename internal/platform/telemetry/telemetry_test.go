package telemetry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_MiddlewareRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := NewMetrics()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/jobs/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/J1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "careerhub_http_requests_total"), "expected counter in exposition, got:\n%s", body)
	assert.True(t, strings.Contains(body, `route="/api/jobs/:id"`), "expected route template label, got:\n%s", body)
}
