package ticket

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/application/ticket/usecases"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type ProductbookHandler struct {
	createUC usecases.CreateProductbookExecutor
	listUC   usecases.ListProductbooksExecutor
	useUC    usecases.UseProductbookExecutor
	updateUC usecases.UpdateProductbookExecutor
	deleteUC usecases.DeleteByIDExecutor
	logger   logger.Interface
}

func NewProductbookHandler(
	createUC usecases.CreateProductbookExecutor,
	listUC usecases.ListProductbooksExecutor,
	useUC usecases.UseProductbookExecutor,
	updateUC usecases.UpdateProductbookExecutor,
	deleteUC usecases.DeleteByIDExecutor,
	logger logger.Interface,
) *ProductbookHandler {
	return &ProductbookHandler{
		createUC: createUC,
		listUC:   listUC,
		useUC:    useUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// ListMine handles GET /user-productbooks?product_id=
func (h *ProductbookHandler) ListMine(c *gin.Context) {
	books, err := h.listUC.Execute(c.Request.Context(), usecases.ListProductbooksQuery{
		UserID:    middleware.Subject(c).UserID,
		ProductID: utils.QueryInt64Ptr(c, "product_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.List(c, books)
}

// Create handles POST /user-productbook
func (h *ProductbookHandler) Create(c *gin.Context) {
	var req CreateProductbookRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pb, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(writerOf(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, pb)
}

// Use handles POST /user-productbook/:id/use
func (h *ProductbookHandler) Use(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req UseProductbookRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pb, err := h.useUC.Execute(c.Request.Context(), usecases.UseProductbookCommand{
		ProductbookID: id,
		UserID:        middleware.Subject(c).UserID,
		EpisodeID:     req.EpisodeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, pb)
}

// Update handles PUT /user-productbook/:id
func (h *ProductbookHandler) Update(c *gin.Context) {
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

	if err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateProductbookCommand{
		ID:       id,
		Fields:   fields,
		WriterID: writerOf(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

// Delete handles DELETE /user-productbook/:id
func (h *ProductbookHandler) Delete(c *gin.Context) {
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
