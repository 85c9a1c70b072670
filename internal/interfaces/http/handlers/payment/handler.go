package payment

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/application/payment/usecases"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type SponsorRequest struct {
	DonationPrice int64   `json:"donationPrice" binding:"required,min=1"`
	Message       *string `json:"message" binding:"omitempty,max=500"`
}

type ConfirmVirtualAccountRequest struct {
	OrderNo string `json:"orderNo" binding:"required,max=100"`
}

type Handler struct {
	sponsorUC usecases.SponsorAuthorExecutor
	confirmUC usecases.ConfirmVirtualAccountExecutor
	logger    logger.Interface
}

func NewHandler(sponsorUC usecases.SponsorAuthorExecutor, confirmUC usecases.ConfirmVirtualAccountExecutor, logger logger.Interface) *Handler {
	return &Handler{sponsorUC: sponsorUC, confirmUC: confirmUC, logger: logger}
}

// Sponsor handles POST /authors/:profileId/sponsorships
func (h *Handler) Sponsor(c *gin.Context) {
	profileID, err := utils.ParseIDParam(c, "profileId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req SponsorRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sponsorUC.Execute(c.Request.Context(), usecases.SponsorAuthorCommand{
		AuthorProfileID: profileID,
		UserID:          middleware.Subject(c).UserID,
		DonationPrice:   req.DonationPrice,
		Message:         req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, result)
}

// ConfirmVirtualAccount handles POST /payments/virtual-account/confirm
func (h *Handler) ConfirmVirtualAccount(c *gin.Context) {
	var req ConfirmVirtualAccountRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	confirmed, err := h.confirmUC.Execute(c.Request.Context(), usecases.ConfirmVirtualAccountCommand{
		OrderNo: req.OrderNo,
		Secret:  c.GetHeader(constants.HeaderWebhookSecret),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, confirmed)
}
