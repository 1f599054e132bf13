package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func newRouter(gen Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(gen).Register(r.Group("/api/chat"))
	return r
}

func post(r *gin.Engine, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestChat_Success(t *testing.T) {
	gen := &stubGenerator{reply: "I built this portfolio with Go."}
	r := newRouter(gen)

	rr := post(r, gin.H{"message": "What is this site built with?"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"reply":"I built this portfolio with Go."}`, rr.Body.String())

	// The prompt wraps the user message with the assistant context.
	assert.True(t, strings.HasSuffix(gen.lastPrompt, "User: What is this site built with?\n\nAssistant:"))
	assert.Greater(t, len(gen.lastPrompt), len("What is this site built with?"))
}

func TestChat_EmptyMessage(t *testing.T) {
	for name, body := range map[string]gin.H{
		"missing":    {},
		"blank":      {"message": ""},
		"whitespace": {"message": "   "},
	} {
		t.Run(name, func(t *testing.T) {
			r := newRouter(&stubGenerator{})
			rr := post(r, body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"Message is required"}`, rr.Body.String())
		})
	}
}

func TestChat_RateLimitedUpstream(t *testing.T) {
	r := newRouter(&stubGenerator{err: ErrRateLimited})

	rr := post(r, gin.H{"message": "Hello"})
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestChat_UpstreamFailure(t *testing.T) {
	r := newRouter(&stubGenerator{err: errors.New("boom")})

	rr := post(r, gin.H{"message": "Hello"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
