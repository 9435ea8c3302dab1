package handler

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/infrastructure/storage"
	"nearbuy/pkg/errors"
	"nearbuy/pkg/response"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
	}
}

var allowedFolders = map[string]bool{
	"posts":    true,
	"replies":  true,
	"messages": true,
	"avatars":  true,
}

// Upload receives a multipart image and returns its public URL for use in
// post, reply or message payloads.
func (h *FileHandler) Upload(c echo.Context) error {
	folder := c.FormValue("folder")
	if !allowedFolders[folder] {
		return response.Error(c, errors.BadRequest("folder must be one of: posts, replies, messages, avatars", nil))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("file is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.storageClient.UploadImage(c.Request().Context(), file, contentType, folder)
	if err != nil {
		return response.Error(c, errors.BadRequest("Upload failed: unsupported or unreadable image", err))
	}

	return response.Created(c, map[string]string{"url": url})
}
