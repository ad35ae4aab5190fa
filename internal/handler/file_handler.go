package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"cloudbox/internal/config"
	"cloudbox/internal/domain"
	"cloudbox/internal/service"
)

// FileHandler handles the upload and fetch endpoints.
type FileHandler struct {
	fileService service.FileService
	cfg         *config.S3Config
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService service.FileService, cfg *config.S3Config) *FileHandler {
	return &FileHandler{fileService: fileService, cfg: cfg}
}

// Upload handles POST /upload. Expects a multipart form with a user_id field
// and a file part. Extension and size limits are checked here, once per
// request, before the workflow runs.
func (h *FileHandler) Upload(c *gin.Context) {
	userID := c.PostForm("user_id")
	file, header, err := c.Request.FormFile("file")
	if err != nil || userID == "" {
		RespondError(c, http.StatusBadRequest, "Missing file or user id")
		return
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		RespondError(c, http.StatusBadRequest, "Invalid file type")
		return
	}

	maxBytes := h.cfg.MaxFileSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		RespondError(c, http.StatusBadRequest, "File size exceeds the limit")
		return
	}

	input := service.FileUploadInput{
		UserID:      userID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}

	if _, err := h.fileService.Upload(c.Request.Context(), input); err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "File uploaded successfully",
		"file_name": header.Filename,
		"user_id":   userID,
	})
}

// Fetch handles GET /fetch?user_id=&file_id=. Returns a presigned download URL
// for the stored object; metadata fields are not re-exposed here.
func (h *FileHandler) Fetch(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	fileID := strings.TrimSpace(c.Query("file_id"))
	if userID == "" || fileID == "" {
		RespondError(c, http.StatusBadRequest, "Missing required parameters")
		return
	}

	url, err := h.fileService.Fetch(c.Request.Context(), userID, fileID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"presigned_url": url})
}

// Home handles GET /home.
func (h *FileHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to CloudBox!"})
}
