package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotations-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotations-service/internal/app"
	"github.com/jsamuelsen/quotations-service/internal/domain"
)

// QuotationHandler serves the public browsing endpoints.
type QuotationHandler struct {
	catalog *app.CatalogService
}

// NewQuotationHandler creates a new quotation handler.
func NewQuotationHandler(catalog *app.CatalogService) *QuotationHandler {
	return &QuotationHandler{catalog: catalog}
}

// List handles GET /api/v1/quotations.
// Only approved quotations are returned unless a status filter says otherwise; filtering on
// unreviewed content is reserved for reviewers.
func (h *QuotationHandler) List(c *gin.Context) {
	var query dto.ListQuotationsQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	filter := query.Filter()
	if filter.Status != nil && *filter.Status != domain.StatusApproved &&
		!middleware.AuthorizeAnyRole(c, reviewerRoles...) {
		return
	}

	page, err := h.catalog.List(c.Request.Context(), filter, query.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewQuotationResponse))
}

// Search handles GET /api/v1/quotations/search?q=.
func (h *QuotationHandler) Search(c *gin.Context) {
	var query dto.SearchQuotationsQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	page, err := h.catalog.Search(c.Request.Context(), query.Q, query.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewQuotationResponse))
}

// Get handles GET /api/v1/quotations/:id.
func (h *QuotationHandler) Get(c *gin.Context) {
	q, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(q))
}

// RegisterRoutes registers quotation routes on the given router group.
func (h *QuotationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	quotations := rg.Group("/quotations")
	quotations.GET("", h.List)
	quotations.GET("/search", h.Search)
	quotations.GET("/:id", h.Get)
}
