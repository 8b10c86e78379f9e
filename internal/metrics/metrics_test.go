package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsRoute(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(c.Middleware())
	router.GET("/api/v1/incidents/:id", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/incidents/abc", nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requestTotal.WithLabelValues("GET", "/api/v1/incidents/:id", "200")))
}

func TestObservers(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	c.ObserveComplaint("success")
	c.ObserveComplaint("rejected")
	c.ObserveComplaint("success")
	c.ObserveSeverity(models.SeverityPrimary)
	c.ObserveRemote("list_complaints", time.Now(), nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.complaints.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.classifications.WithLabelValues("primary")))

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "bodycam_complaint_submissions_total")
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveComplaint("success")
		c.ObserveSeverity(models.SeverityNone)
		c.ObserveRemote("sign_in", time.Now(), nil)
	})
}
