package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotations-service/internal/app"
)

// CatalogHandler serves the author, source and tag catalogues.
type CatalogHandler struct {
	catalog *app.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *app.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Authors handles GET /api/v1/authors?limit=.
func (h *CatalogHandler) Authors(c *gin.Context) {
	var query dto.LimitQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	authors, err := h.catalog.Authors(c.Request.Context(), query.Limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(authors, dto.NewAuthorResponse))
}

// Author handles GET /api/v1/authors/:id, enriched from the author directory when one
// is configured.
func (h *CatalogHandler) Author(c *gin.Context) {
	details, err := h.catalog.Author(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthorDetailsResponse(details))
}

// Sources handles GET /api/v1/sources?type=&limit=.
func (h *CatalogHandler) Sources(c *gin.Context) {
	var query dto.ListSourcesQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	sources, err := h.catalog.Sources(c.Request.Context(), query.SourceType(), query.Limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(sources, dto.NewSourceResponse))
}

// Source handles GET /api/v1/sources/:id.
func (h *CatalogHandler) Source(c *gin.Context) {
	source, err := h.catalog.Source(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSourceResponse(source))
}

// Tags handles GET /api/v1/tags?limit=.
func (h *CatalogHandler) Tags(c *gin.Context) {
	var query dto.LimitQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	tags, err := h.catalog.Tags(c.Request.Context(), query.Limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(tags, dto.NewTagResponse))
}

// RegisterRoutes registers catalogue routes on the given router group.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/authors", h.Authors)
	rg.GET("/authors/:id", h.Author)
	rg.GET("/sources", h.Sources)
	rg.GET("/sources/:id", h.Source)
	rg.GET("/tags", h.Tags)
}
