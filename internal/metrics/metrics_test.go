package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := New()

	r.ObserveAnalysis("Moderate")
	r.ObserveAnalysis("Moderate")
	r.ObserveRejection("EMPTY_PORTFOLIO")
	r.ObserveDocument("pdf", 4096)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.analyses.WithLabelValues("Moderate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rejections.WithLabelValues("EMPTY_PORTFOLIO")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.documents))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveAnalysis("Aggressive")
		r.ObserveRejection("INVALID_INPUT")
		r.ObserveDocument("svg", 10)
	})
}

func TestRecorder_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := New()

	router := gin.New()
	router.Use(r.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/metrics", gin.WrapH(r.Handler()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "/ping", "200")))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "wealthcheck_http_requests_total"))
}
