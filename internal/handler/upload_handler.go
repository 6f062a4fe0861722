package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/response"
	"backoffice/internal/service"
)

// UploadHandler handles admin image uploads.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload godoc
// @Summary Upload an image
// @Description Stores the file as {type}_{timestamp}_{random}.{ext} and returns the URL to persist.
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param type path string true "Upload type (product, category, banner, popup, menu)"
// @Param file formData file true "Image file"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /admin/upload/{type} [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, "file is required")
	}

	result, err := h.uploadService.Save(file, c.Param("type"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "uploaded", result)
}
