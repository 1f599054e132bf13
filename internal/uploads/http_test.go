package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	url    string
	err    error
	called bool
}

func (s *stubStore) Save(context.Context, string, string, io.Reader) (string, error) {
	s.called = true
	return s.url, s.err
}

func newRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(store).Register(r.Group("/api/upload"))
	return r
}

func multipartImage(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func postUpload(r *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestUpload_Success(t *testing.T) {
	r := newRouter(&stubStore{url: "/uploads/project-abc.png"})

	body, ct := multipartImage(t, "image", "photo.png", "image/png", []byte("fake png bytes"))
	rr := postUpload(r, body, ct)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success  bool   `json:"success"`
		ImageURL string `json:"imageUrl"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "/uploads/project-abc.png", resp.ImageURL)
}

func TestUpload_MissingFile(t *testing.T) {
	r := newRouter(&stubStore{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())

	rr := postUpload(r, &buf, w.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"No file uploaded"}`, rr.Body.String())
}

func TestUpload_RejectsNonImage(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"wrong extension", "notes.txt", "text/plain"},
		{"image extension but non-image type", "photo.png", "application/octet-stream"},
		{"executable disguised", "run.exe", "image/png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(&stubStore{})

			body, ct := multipartImage(t, "image", tc.filename, tc.contentType, []byte("data"))
			rr := postUpload(r, body, ct)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"Only image files are allowed"}`, rr.Body.String())
		})
	}
}

func TestUpload_OversizedBodyCutOff(t *testing.T) {
	store := &stubStore{url: "/uploads/should-not-happen.png"}
	r := newRouter(store)

	// Just over the body cap; rejected while parsing, never stored.
	body, ct := multipartImage(t, "image", "big.png", "image/png", bytes.Repeat([]byte("x"), maxBodySize+1))
	rr := postUpload(r, body, ct)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, store.called, "oversized upload must not reach the store")
}

func TestUpload_StoreFailure(t *testing.T) {
	r := newRouter(&stubStore{err: errors.New("disk full")})

	body, ct := multipartImage(t, "image", "photo.jpg", "image/jpeg", []byte("data"))
	rr := postUpload(r, body, ct)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir)

	url, err := store.Save(context.Background(), "project-1.png", "image/png", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/project-1.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "project-1.png"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewDiskStore(dir)

	_, err := store.Save(context.Background(), "a.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "a.png"))
	assert.NoError(t, err)
}
