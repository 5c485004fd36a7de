package handlers

import (
	"errors"
	"net/http"

	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles HTTP requests for file uploads
type UploadHandler struct {
	uploadService service.UploadServiceInterface
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService service.UploadServiceInterface) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Upload handles POST /upload
// @Summary Upload attachment files
// @Description Accept one or more files from the multipart field "files" and return their descriptors
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to upload"
// @Success 200 {object} map[string][]service.FileDescriptor "Uploaded file descriptors"
// @Failure 400 {object} ErrorResponse "No files provided"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading files"})
		return
	}

	files := form.File["files"]
	descriptors, err := h.uploadService.SaveFiles(files)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoFilesProvided) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading files"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": descriptors})
}
