package contact

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

type fakeSender struct {
	sent []Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newRouter(sender Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(sender).Register(r.Group("/api/contact"), func(c *gin.Context) { c.Next() })
	return r
}

func post(r *gin.Engine, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSubmit_Success(t *testing.T) {
	sender := &fakeSender{}
	r := newRouter(sender)

	rr := post(r, gin.H{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Hello, I would like to work with you.",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Message received and email sent successfully!"}`, rr.Body.String())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Jane Doe", sender.sent[0].Name)
	assert.Equal(t, "jane@example.com", sender.sent[0].Email)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		body  gin.H
		field string
	}{
		{
			"short name",
			gin.H{"name": "J", "email": "jane@example.com", "message": "A valid message here."},
			"name",
		},
		{
			"bad email",
			gin.H{"name": "Jane Doe", "email": "not-an-email", "message": "A valid message here."},
			"email",
		},
		{
			"short message",
			gin.H{"name": "Jane Doe", "email": "jane@example.com", "message": "too short"},
			"message",
		},
		{
			"long message",
			gin.H{"name": "Jane Doe", "email": "jane@example.com", "message": strings.Repeat("x", 1001)},
			"message",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &fakeSender{}
			r := newRouter(sender)

			rr := post(r, tc.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)

			var resp struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
				Errors  []struct {
					Field string `json:"field"`
				} `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, "Validation failed", resp.Message)
			require.NotEmpty(t, resp.Errors)
			assert.Equal(t, tc.field, resp.Errors[0].Field)

			assert.Empty(t, sender.sent, "nothing should be relayed on validation failure")
		})
	}
}

func TestSubmit_MessageBoundaryLengths(t *testing.T) {
	for _, n := range []int{10, 1000} {
		sender := &fakeSender{}
		r := newRouter(sender)

		rr := post(r, gin.H{
			"name":    "Jane Doe",
			"email":   "jane@example.com",
			"message": strings.Repeat("x", n),
		})
		assert.Equal(t, http.StatusOK, rr.Code, "length %d should be accepted", n)
	}
}

func TestSubmit_SenderFailure(t *testing.T) {
	r := newRouter(&fakeSender{err: errors.New("smtp down")})

	rr := post(r, gin.H{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Hello, I would like to work with you.",
	})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to send email. Please try again later."}`, rr.Body.String())
}
