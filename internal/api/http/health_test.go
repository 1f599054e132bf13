package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(context.Context) error {
	return s.err
}

func newHealthRouter(db Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler("1.0.0", db).RegisterRoutes(r)
	return r
}

func TestHealthCheck_DBUp(t *testing.T) {
	router := newHealthRouter(&stubPinger{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "portfolio-backend", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Equal(t, "up", response.DB)
	assert.False(t, response.Timestamp.IsZero())
}

func TestHealthCheck_DBDown(t *testing.T) {
	router := newHealthRouter(&stubPinger{err: errors.New("connection refused")})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "degraded", response.Status)
	assert.Equal(t, "down", response.DB)
}

func TestHealthCheck_AliasRoute(t *testing.T) {
	router := newHealthRouter(&stubPinger{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHealthCheck_MethodNotAllowed(t *testing.T) {
	router := newHealthRouter(&stubPinger{})
	router.HandleMethodNotAllowed = true

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("POST", "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
