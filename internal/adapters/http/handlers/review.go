package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotations-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotations-service/internal/app"
	"github.com/jsamuelsen/quotations-service/internal/domain"
)

// ReviewHandler serves the moderation queue. Every route requires the reviewer or
// admin role.
type ReviewHandler struct {
	review  *app.ReviewService
	catalog *app.CatalogService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(review *app.ReviewService, catalog *app.CatalogService) *ReviewHandler {
	return &ReviewHandler{review: review, catalog: catalog}
}

// Pending handles GET /api/v1/review/pending, oldest submission first.
func (h *ReviewHandler) Pending(c *gin.Context) {
	var query dto.PageQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	page, err := h.catalog.Pending(c.Request.Context(), query.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewQuotationResponse))
}

// Approve handles POST /api/v1/review/:id/approve. The body is optional.
func (h *ReviewHandler) Approve(c *gin.Context) {
	var req dto.ApproveQuotationRequest
	if err := dto.BindOptionalJSONAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	q, err := h.review.Approve(c.Request.Context(), c.Param("id"), reviewer(c), req.ReviewerNotes)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(q))
}

// Reject handles POST /api/v1/review/:id/reject.
func (h *ReviewHandler) Reject(c *gin.Context) {
	var req dto.RejectQuotationRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	q, err := h.review.Reject(c.Request.Context(), c.Param("id"), reviewer(c), req.RejectionReason, req.ReviewerNotes)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(q))
}

// Duplicates handles GET /api/v1/review/:id/duplicates.
func (h *ReviewHandler) Duplicates(c *gin.Context) {
	dups, err := h.review.FindPotentialDuplicates(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dups, dto.NewQuotationResponse))
}

// RegisterRoutes registers review routes on the given router group.
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	review := rg.Group("/review", middleware.RequireAnyRole(reviewerRoles...))
	review.GET("/pending", h.Pending)
	review.POST("/:id/approve", h.Approve)
	review.POST("/:id/reject", h.Reject)
	review.GET("/:id/duplicates", h.Duplicates)
}

var reviewerRoles = []string{middleware.RoleReviewer, middleware.RoleAdmin}

// reviewer must only be called behind RequireAnyRole.
func reviewer(c *gin.Context) domain.UserRef {
	claims := middleware.GetClaims(c)
	return domain.UserRef{ID: claims.Subject, Username: claims.Username}
}
