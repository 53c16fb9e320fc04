// server/internal/api/handlers/upload_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"sanjivani-agritech-api-server/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	Uploader *storage.Uploader
}

// 10 MB, matching the request body limit of the public API.
const maxUploadSize = 10 << 20

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// UploadImage accepts a multipart "image" file from the admin panel, stores
// it under a uuid key and returns the public URL to embed in product, team
// or project documents.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.Uploader == nil {
		respondError(c, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "An image file is required")
		return
	}

	if fileHeader.Size > maxUploadSize {
		respondError(c, http.StatusBadRequest, "Image cannot exceed 10MB")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		respondError(c, http.StatusBadRequest, "Unsupported image type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("uploads/%s%s", uuid.New().String(), ext)
	url, err := h.Uploader.UploadImage(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	respondCreated(c, gin.H{"url": url, "key": objectKey}, "Image uploaded successfully")
}
