package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"sanjivani-agritech-api-server/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRouter(u *storage.Uploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &UploadHandler{Uploader: u}
	r := gin.New()
	r.POST("/api/admin/uploads", h.UploadImage)
	return r
}

func multipartFile(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func postUpload(r *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	return w
}

func TestUploadWithoutStorageConfigured(t *testing.T) {
	r := newUploadRouter(nil)
	body, contentType := multipartFile(t, "image", "photo.png")
	w := postUpload(r, body, contentType)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Image storage is not configured")
}

func TestUploadRequiresImageField(t *testing.T) {
	r := newUploadRouter(&storage.Uploader{Bucket: "media"})
	body, contentType := multipartFile(t, "file", "photo.png")
	w := postUpload(r, body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "An image file is required")
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	r := newUploadRouter(&storage.Uploader{Bucket: "media"})

	for _, filename := range []string{"payload.exe", "notes.pdf", "noextension"} {
		body, contentType := multipartFile(t, "image", filename)
		w := postUpload(r, body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code, "filename %q", filename)
		assert.Contains(t, w.Body.String(), "Unsupported image type")
	}
}
