package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddlewareCountsRequests(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	handler := HTTPMiddleware(inner)

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/signup", "201"))

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/signup", "201"))
	require.Equal(t, before+1, after)
}

func TestHTTPMiddlewareDefaultsStatusToOK(t *testing.T) {
	// A handler that writes a body without calling WriteHeader.
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	handler := HTTPMiddleware(inner)

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/healthz", "200"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/healthz", "200"))
	require.Equal(t, before+1, after)
}

func TestHTTPMiddlewareInFlightReturnsToZero(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsInFlight))
		w.WriteHeader(http.StatusOK)
	})
	handler := HTTPMiddleware(inner)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}
