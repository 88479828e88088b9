package v1

import (
	"net/http"
	"path/filepath"

	"go-talent-tracking/config"
	"go-talent-tracking/internal/delivery/http/response"
	"go-talent-tracking/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Résumé uploads accept PDF and DOCX only.
var allowedResumeTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type UploadHandler struct {
	cfg *config.Config
}

func NewUploadHandler(r *gin.RouterGroup, cfg *config.Config) {
	handler := &UploadHandler{cfg: cfg}
	r.POST("/upload", handler.UploadResume)
}

// UploadResume stores a résumé file on disk and returns the filePath and
// fileType strings the intake payload's cv field expects. File bytes are
// never inspected beyond the extension check.
func (h *UploadHandler) UploadResume(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid file"))
		return
	}

	if file.Size > h.cfg.MaxUploadSizeMB*1024*1024 {
		c.Error(apperror.BadRequest("File too large"))
		return
	}

	ext := filepath.Ext(file.Filename)
	fileType, ok := allowedResumeTypes[ext]
	if !ok {
		c.Error(apperror.BadRequest("Invalid file type, only PDF and DOCX are allowed"))
		return
	}

	dest := filepath.Join(h.cfg.UploadDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "File uploaded successfully", gin.H{
		"filePath": dest,
		"fileType": fileType,
	})
}
