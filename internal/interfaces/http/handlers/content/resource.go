package content

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/application/content/usecases"
	"likenovel/internal/domain/user"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

// reader serves list and detail for any content kind.
type reader[D any] struct {
	name   string
	uc     usecases.ResourceReader[D]
	logger logger.Interface
}

// List handles GET /<resource>. Query keys other than paging become equality filters;
// the store drops columns it does not allow. Admins also see retired rows.
func (h *reader[D]) List(c *gin.Context) {
	page := utils.ParseOptionalPagination(c)
	items, total, err := h.uc.List(c.Request.Context(), usecases.ListQuery{
		Page:         page.Page,
		CountPerPage: page.CountPerPage,
		ActiveOnly:   middleware.Subject(c).Role != user.RoleAdmin,
		Filters:      queryFilters(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListOrPaged(c, items, total, page)
}

// Get handles GET /<resource>/:id
func (h *reader[D]) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	item, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, item)
}

// ResourceHandler serves an admin-managed content kind. R is the create body.
type ResourceHandler[E any, D any, R EntityRequest[E]] struct {
	reader[D]
	uc usecases.ResourceExecutor[E, D]
}

func NewResourceHandler[E any, D any, R EntityRequest[E]](
	name string,
	uc usecases.ResourceExecutor[E, D],
	logger logger.Interface,
) *ResourceHandler[E, D, R] {
	return &ResourceHandler[E, D, R]{
		reader: reader[D]{name: name, uc: uc, logger: logger},
		uc:     uc,
	}
}

// Create handles POST /<resource>
func (h *ResourceHandler[E, D, R]) Create(c *gin.Context) {
	var req R
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create "+h.name, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := h.uc.Create(c.Request.Context(), req.ToEntity(), writerOf(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, CreatedResponse{ID: id})
}

// Update handles PUT /<resource>/:id
func (h *ResourceHandler[E, D, R]) Update(c *gin.Context) {
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
	if err := h.uc.Update(c.Request.Context(), id, fields, writerOf(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

// Delete handles DELETE /<resource>/:id
func (h *ResourceHandler[E, D, R]) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

// OwnedHandler serves reader-authored rows; only the author may update or delete.
type OwnedHandler[D any] struct {
	reader[D]
	uc usecases.OwnedResourceExecutor[D]
}

func NewOwnedHandler[D any](name string, uc usecases.OwnedResourceExecutor[D], logger logger.Interface) *OwnedHandler[D] {
	return &OwnedHandler[D]{
		reader: reader[D]{name: name, uc: uc, logger: logger},
		uc:     uc,
	}
}

// Update handles PUT /<resource>/:id
func (h *OwnedHandler[D]) Update(c *gin.Context) {
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
	if err := h.uc.UpdateOwned(c.Request.Context(), id, fields, middleware.Subject(c).UserID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

// Delete handles DELETE /<resource>/:id
func (h *OwnedHandler[D]) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.uc.DeleteOwned(c.Request.Context(), id, middleware.Subject(c).UserID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

func writerOf(c *gin.Context) int64 {
	return utils.WriterID(middleware.Subject(c).UserID)
}

func queryFilters(c *gin.Context) map[string]interface{} {
	filters := make(map[string]interface{})
	for key, values := range c.Request.URL.Query() {
		if key == "page" || key == "count_per_page" || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}
	return filters
}
