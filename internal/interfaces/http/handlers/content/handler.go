package content

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/application/content/usecases"
	"likenovel/internal/domain/content"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

// Handler serves the content operations that do not fit the uniform CRUD shape.
type Handler struct {
	getNoticeUC        usecases.GetNoticeExecutor
	currentPopupUC     usecases.CurrentPopupExecutor
	ratesUC            usecases.GetRatesExecutor
	createEvaluationUC usecases.CreateEvaluationExecutor
	reviews            usecases.EntityCreator[content.Review]
	logger             logger.Interface
}

func NewHandler(
	getNoticeUC usecases.GetNoticeExecutor,
	currentPopupUC usecases.CurrentPopupExecutor,
	ratesUC usecases.GetRatesExecutor,
	createEvaluationUC usecases.CreateEvaluationExecutor,
	reviews usecases.EntityCreator[content.Review],
	logger logger.Interface,
) *Handler {
	return &Handler{
		getNoticeUC:        getNoticeUC,
		currentPopupUC:     currentPopupUC,
		ratesUC:            ratesUC,
		createEvaluationUC: createEvaluationUC,
		reviews:            reviews,
		logger:             logger,
	}
}

// GetNotice handles GET /notices/:id and counts the view.
func (h *Handler) GetNotice(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	notice, err := h.getNoticeUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, notice)
}

// CurrentPopup handles GET /popup. No popup renders as {"data":null}.
func (h *Handler) CurrentPopup(c *gin.Context) {
	popup, err := h.currentPopupUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, popup)
}

// Rates handles GET /common-codes/rates
func (h *Handler) Rates(c *gin.Context) {
	rates, err := h.ratesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, rates)
}

// CreateEvaluation handles POST /evaluations
func (h *Handler) CreateEvaluation(c *gin.Context) {
	var req CreateEvaluationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	eval, err := h.createEvaluationUC.Execute(c.Request.Context(), usecases.CreateEvaluationCommand{
		ProductID: req.ProductID,
		EpisodeID: req.EpisodeID,
		UserID:    middleware.Subject(c).UserID,
		EvalCode:  req.EvalCode,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, eval)
}

// CreateReview handles POST /reviews
func (h *Handler) CreateReview(c *gin.Context) {
	userID := middleware.Subject(c).UserID
	if userID <= 0 {
		utils.ErrorResponseWithError(c, errors.ErrLoginRequired)
		return
	}
	var req CreateReviewRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := h.reviews.Create(c.Request.Context(), req.toEntity(userID), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, CreatedResponse{ID: id})
}
