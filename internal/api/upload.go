package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aris-health/aris-backend/internal/middleware"
	"github.com/aris-health/aris-backend/internal/service"
)

// maxUploadBytes caps catalog asset uploads at 10 MB.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploadService service.IUploadService
	authService   service.IAuthService
}

func NewUploadHandler(uploadService service.IUploadService, authService service.IAuthService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		authService:   authService,
	}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/s3-upload",
		middleware.AuthRequired(h.authService),
		middleware.AdminRequired(),
		h.Upload,
	)
}

// Upload stores a multipart file in the asset bucket and returns its URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.uploadService == nil {
		respondError(c, http.StatusServiceUnavailable, "file storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no file provided")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "file exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInternal(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respondInternal(c, err)
		return
	}
	if int64(len(data)) > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "file exceeds the 10MB limit")
		return
	}

	url, err := h.uploadService.Upload(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		respondInternal(c, err)
		return
	}

	respondOK(c, "file uploaded", gin.H{"url": url})
}
