package handler

import (
	"errors"
	"net/http"

	"contacts_admin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgUploadNoFile    = "Please select a file to upload."
	msgUploadBadFormat = "Only .xls and .xlsx files are accepted"
	msgUploadTooLarge  = "The file is too large."
	msgUploadFailed    = "File upload failed. Please try again."
	msgUploadSucceeded = "File uploaded successfully!"
)

// UploadHandler serves the spreadsheet bulk import screen.
type UploadHandler struct {
	service service.ContactService
	log     *zap.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(s service.ContactService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{service: s, log: log}
}

func (h *UploadHandler) ShowUpload(c *gin.Context) {
	renderUpload(c, http.StatusOK, "", "")
}

func (h *UploadHandler) Upload(c *gin.Context) {
	file := optionalFile(c, "file")
	if file == nil {
		renderUpload(c, http.StatusBadRequest, msgUploadNoFile, "")
		return
	}

	reply, err := h.service.UploadSpreadsheet(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFileFormat):
			renderUpload(c, http.StatusBadRequest, msgUploadBadFormat, "")
		case errors.Is(err, service.ErrFileSizeExceeded):
			renderUpload(c, http.StatusBadRequest, msgUploadTooLarge, "")
		case errors.Is(err, service.ErrFileRequired):
			renderUpload(c, http.StatusBadRequest, msgUploadNoFile, "")
		default:
			h.log.Error("Error uploading contacts", zap.String("file", file.Filename), zap.Error(err))
			renderUpload(c, http.StatusBadGateway, msgUploadFailed, "")
		}
		return
	}

	h.log.Info("Contacts uploaded", zap.String("file", file.Filename), zap.String("reply", reply))
	renderUpload(c, http.StatusOK, "", msgUploadSucceeded)
}

func renderUpload(c *gin.Context, status int, errMsg, successMsg string) {
	render(c, status, "upload.html", gin.H{
		"title":   "Upload Contacts",
		"error":   errMsg,
		"success": successMsg,
	})
}

// RegisterUploadRoutes registers the upload screen behind guard.
func (h *UploadHandler) RegisterUploadRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	upload := rg.Group("/dashboard/upload")
	upload.Use(guard)
	{
		upload.GET("", h.ShowUpload)
		upload.POST("", h.Upload)
	}
}
