package file

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/application/file/usecases"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type PresignUploadRequest struct {
	GroupType string `json:"groupType" binding:"required"`
	FileName  string `json:"fileName" binding:"required,max=255"`
	FileSize  int64  `json:"fileSize" binding:"min=0"`
}

type Handler struct {
	presignUC usecases.PresignUploadExecutor
	logger    logger.Interface
}

func NewHandler(presignUC usecases.PresignUploadExecutor, logger logger.Interface) *Handler {
	return &Handler{presignUC: presignUC, logger: logger}
}

// PresignUpload handles POST /files/presigned-upload
func (h *Handler) PresignUpload(c *gin.Context) {
	var req PresignUploadRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	upload, err := h.presignUC.Execute(c.Request.Context(), usecases.PresignUploadCommand{
		GroupType: req.GroupType,
		FileName:  req.FileName,
		FileSize:  req.FileSize,
		UserID:    middleware.Subject(c).UserID,
	})
	if err != nil {
		h.logger.Warnw("presigned upload failed", "group_type", req.GroupType, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, upload)
}
