package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddleware_CountsByRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/accounts/:accountID", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/accounts/:accountID", "204"))
	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/accounts/"+id, nil)
		router.ServeHTTP(w, req)
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/accounts/:accountID", "204"))

	assert.Equal(t, 2.0, after-before)
	assert.Equal(t, 0.0, testutil.ToFloat64(httpInFlight))
}

func TestObserveBalance_SplitsOutcome(t *testing.T) {
	okBefore := testutil.ToFloat64(balanceComputations.WithLabelValues("opening", "ok"))
	errBefore := testutil.ToFloat64(balanceComputations.WithLabelValues("opening", "error"))

	ObserveBalance("opening", nil)
	ObserveBalance("opening", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(balanceComputations.WithLabelValues("opening", "ok"))-okBefore)
	assert.Equal(t, 1.0, testutil.ToFloat64(balanceComputations.WithLabelValues("opening", "error"))-errBefore)
}
