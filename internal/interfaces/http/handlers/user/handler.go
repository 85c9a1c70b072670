package user

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/application/user/usecases"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,max=20"`
}

type Handler struct {
	getMeUC      usecases.GetMeExecutor
	adminLoginUC usecases.AdminLoginExecutor
	logger       logger.Interface
}

func NewHandler(getMeUC usecases.GetMeExecutor, adminLoginUC usecases.AdminLoginExecutor, logger logger.Interface) *Handler {
	return &Handler{
		getMeUC:      getMeUC,
		adminLoginUC: adminLoginUC,
		logger:       logger,
	}
}

// GetMe handles GET /users/me
func (h *Handler) GetMe(c *gin.Context) {
	me, err := h.getMeUC.Execute(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, me)
}

// AdminLogin handles POST /admin/auth/login
func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	token, err := h.adminLoginUC.Execute(c.Request.Context(), usecases.AdminLoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, token)
}
