package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kelasin/kelasin-api/internal/service"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/response"
)

// UploadHandler exposes the generic file upload endpoint.
type UploadHandler struct {
	service *service.UploadService
	metrics *service.MetricsService
}

// NewUploadHandler constructs an upload handler.
func NewUploadHandler(svc *service.UploadService, metrics *service.MetricsService) *UploadHandler {
	return &UploadHandler{service: svc, metrics: metrics}
}

// Upload godoc
// @Summary Upload a file
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Param image formData file true "File to upload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to read file"))
		return
	}
	defer file.Close()

	stored, err := h.service.Store(service.FileUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.CountUpload()
	response.Created(c, stored, "File uploaded successfully.")
}
