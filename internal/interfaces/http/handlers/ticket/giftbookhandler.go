package ticket

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/application/ticket/usecases"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type GiftbookHandler struct {
	createUC  usecases.CreateGiftbookExecutor
	listUC    usecases.ListGiftbooksExecutor
	readUC    usecases.ReadGiftbookExecutor
	receiveUC usecases.ReceiveGiftbookExecutor
	logger    logger.Interface
}

func NewGiftbookHandler(
	createUC usecases.CreateGiftbookExecutor,
	listUC usecases.ListGiftbooksExecutor,
	readUC usecases.ReadGiftbookExecutor,
	receiveUC usecases.ReceiveGiftbookExecutor,
	logger logger.Interface,
) *GiftbookHandler {
	return &GiftbookHandler{
		createUC:  createUC,
		listUC:    listUC,
		readUC:    readUC,
		receiveUC: receiveUC,
		logger:    logger,
	}
}

// ListMine handles GET /user-giftbooks
func (h *GiftbookHandler) ListMine(c *gin.Context) {
	page := utils.ParsePagination(c)
	gifts, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListGiftbooksQuery{
		UserID:       middleware.Subject(c).UserID,
		Page:         page.Page,
		CountPerPage: page.CountPerPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Paged(c, gifts, total, page)
}

// Create handles POST /user-giftbook
func (h *GiftbookHandler) Create(c *gin.Context) {
	var req CreateGiftbookRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	g, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(writerOf(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, g)
}

// Read handles POST /user-giftbook/:id/read
func (h *GiftbookHandler) Read(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.readUC.Execute(c.Request.Context(), id, middleware.Subject(c).UserID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

// Receive handles POST /user-giftbook/:id/receive and returns the minted productbooks.
func (h *GiftbookHandler) Receive(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	books, err := h.receiveUC.Execute(c.Request.Context(), usecases.ReceiveGiftbookCommand{
		GiftbookID: id,
		UserID:     middleware.Subject(c).UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.List(c, books)
}
