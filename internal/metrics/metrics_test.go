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

func TestObserveBooking(t *testing.T) {
	m := New("test")

	m.ObserveBooking(OutcomeBooked)
	m.ObserveBooking(OutcomeBooked)
	m.ObserveBooking(OutcomeConflict)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Bookings.WithLabelValues(OutcomeBooked)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Bookings.WithLabelValues(OutcomeConflict)))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveBooking(OutcomeFailed) })
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New("test")

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/turnos/hoy/:clinica_id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/turnos/hoy/42", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequests.WithLabelValues(http.MethodGet, "/turnos/hoy/:clinica_id", "200"),
	))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "test_http_requests_total"))
}
