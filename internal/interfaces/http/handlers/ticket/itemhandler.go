package ticket

import (
	"context"

	"github.com/gin-gonic/gin"

	"likenovel/internal/application/ticket/usecases"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

// ItemHandler serves the admin ticket-item catalog and bulk issuance.
type ItemHandler struct {
	createUC usecases.CreateTicketItemExecutor
	getUC    usecases.GetTicketItemExecutor
	listUC   usecases.ListTicketItemsExecutor
	updateUC usecases.UpdateTicketItemExecutor
	deleteUC usecases.DeleteByIDExecutor
	issueUC  usecases.IssuanceExecutor
	logger   logger.Interface
}

func NewItemHandler(
	createUC usecases.CreateTicketItemExecutor,
	getUC usecases.GetTicketItemExecutor,
	listUC usecases.ListTicketItemsExecutor,
	updateUC usecases.UpdateTicketItemExecutor,
	deleteUC usecases.DeleteByIDExecutor,
	issueUC usecases.IssuanceExecutor,
	logger logger.Interface,
) *ItemHandler {
	return &ItemHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		issueUC:  issueUC,
		logger:   logger,
	}
}

// List handles GET /ticket-items
func (h *ItemHandler) List(c *gin.Context) {
	page := utils.ParseOptionalPagination(c)
	items, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketItemsQuery{
		TicketType:   c.Query("ticket_type"),
		UseYN:        c.Query("use_yn"),
		Page:         page.Page,
		CountPerPage: page.CountPerPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListOrPaged(c, items, total, page)
}

// Get handles GET /ticket-items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	item, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, item)
}

// Create handles POST /ticket-items
func (h *ItemHandler) Create(c *gin.Context) {
	var req CreateTicketItemRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(writerOf(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, item)
}

// Update handles PUT /ticket-items/:id
func (h *ItemHandler) Update(c *gin.Context) {
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

	if err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketItemCommand{
		ID:       id,
		Fields:   fields,
		WriterID: writerOf(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

// Delete handles DELETE /ticket-items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
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

// IssueTicketbooks handles POST /ticket-items/:id/issuance/ticketbook
func (h *ItemHandler) IssueTicketbooks(c *gin.Context) {
	h.issue(c, h.issueUC.IssueTicketbooks)
}

// IssueProductbooks handles POST /ticket-items/:id/issuance/productbook
func (h *ItemHandler) IssueProductbooks(c *gin.Context) {
	h.issue(c, h.issueUC.IssueProductbooks)
}

func (h *ItemHandler) issue(c *gin.Context, run func(ctx context.Context, cmd usecases.IssueCommand) (bool, error)) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req IssuanceRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ok, err := run(c.Request.Context(), req.ToCommand(id, writerOf(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, ok)
}

func writerOf(c *gin.Context) int64 {
	return utils.WriterID(middleware.Subject(c).UserID)
}
