package ticket

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/application/ticket/usecases"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type TicketbookHandler struct {
	postUC   usecases.PostTicketbookExecutor
	useUC    usecases.UseTicketbookExecutor
	listUC   usecases.ListTicketbooksExecutor
	updateUC usecases.UpdateTicketbookExecutor
	deleteUC usecases.DeleteByIDExecutor
	logger   logger.Interface
}

func NewTicketbookHandler(
	postUC usecases.PostTicketbookExecutor,
	useUC usecases.UseTicketbookExecutor,
	listUC usecases.ListTicketbooksExecutor,
	updateUC usecases.UpdateTicketbookExecutor,
	deleteUC usecases.DeleteByIDExecutor,
	logger logger.Interface,
) *TicketbookHandler {
	return &TicketbookHandler{
		postUC:   postUC,
		useUC:    useUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// ListMine handles GET /user-ticketbooks
func (h *TicketbookHandler) ListMine(c *gin.Context) {
	page := utils.ParsePagination(c)
	books, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketbooksQuery{
		UserID:       middleware.Subject(c).UserID,
		Page:         page.Page,
		CountPerPage: page.CountPerPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Paged(c, books, total, page)
}

// Post handles POST /user-ticketbook
func (h *TicketbookHandler) Post(c *gin.Context) {
	var req PostTicketbookRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tb, err := h.postUC.Execute(c.Request.Context(), req.ToCommand(writerOf(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, tb)
}

// Use handles POST /user-ticketbook/:id/use
func (h *TicketbookHandler) Use(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.useUC.Execute(c.Request.Context(), usecases.UseTicketbookCommand{
		TicketbookID: id,
		UserID:       middleware.Subject(c).UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

// Update handles PUT /user-ticketbook/:id
func (h *TicketbookHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	fields, err := utils.BindFields(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketbookCommand{
		ID:       id,
		Fields:   fields,
		WriterID: writerOf(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

// Delete handles DELETE /user-ticketbook/:id
func (h *TicketbookHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}
