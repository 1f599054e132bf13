package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	return r
}

func TestRequestID_EchoesProvidedID(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"request_id":"abc-123"}`, rr.Body.String())
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := newRouter()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/ping", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestRequestID_DistinctPerRequest(t *testing.T) {
	r := newRouter()

	rr1 := httptest.NewRecorder()
	r.ServeHTTP(rr1, httptest.NewRequest("GET", "/ping", nil))
	rr2 := httptest.NewRecorder()
	r.ServeHTTP(rr2, httptest.NewRequest("GET", "/ping", nil))

	assert.NotEqual(t, rr1.Header().Get("X-Request-Id"), rr2.Header().Get("X-Request-Id"))
}
