package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCorrelationAssignsRequestID(t *testing.T) {
	handler := Correlation(zerolog.Nop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	id := res.Header().Get("X-Request-ID")
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestCorrelationKeepsClientRequestID(t *testing.T) {
	handler := Correlation(zerolog.Nop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, "client-supplied-id", res.Header().Get("X-Request-ID"))
}

func TestCorrelationScopesContextLogger(t *testing.T) {
	var sawLogger bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())
		sawLogger = logger != nil
		w.WriteHeader(http.StatusOK)
	})

	handler := Correlation(zerolog.Nop())(inner)
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, sawLogger)
}
