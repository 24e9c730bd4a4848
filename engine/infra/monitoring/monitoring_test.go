package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoring(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Should record requests and expose them on the scrape endpoint", func(t *testing.T) {
		svc := NewService()
		r := gin.New()
		r.Use(svc.Middleware())
		r.GET("/api/courses", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/metrics", gin.WrapH(svc.Handler()))

		req := httptest.NewRequest(http.MethodGet, "/api/courses", http.NoBody)
		r.ServeHTTP(httptest.NewRecorder(), req)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "lms_http_requests_total")
		assert.Contains(t, w.Body.String(), `route="/api/courses"`)
	})

	t.Run("Should label unmatched routes explicitly", func(t *testing.T) {
		svc := NewService()
		r := gin.New()
		r.Use(svc.Middleware())
		r.GET("/metrics", gin.WrapH(svc.Handler()))

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
		assert.Contains(t, w.Body.String(), `route="unmatched"`)
	})
}
