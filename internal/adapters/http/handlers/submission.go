package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotations-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotations-service/internal/app"
)

// SubmissionHandler accepts new quotations and lists the caller's own submissions.
type SubmissionHandler struct {
	review  *app.ReviewService
	catalog *app.CatalogService
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(review *app.ReviewService, catalog *app.CatalogService) *SubmissionHandler {
	return &SubmissionHandler{review: review, catalog: catalog}
}

// Submit handles POST /api/v1/submissions.
// Authentication is optional: anonymous submissions carry no submitter.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req dto.SubmitQuotationRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	var submitterID, submitterName string
	if claims := middleware.GetClaims(c); claims != nil {
		submitterID, submitterName = claims.Subject, claims.Username
	}

	q, err := h.review.Submit(c.Request.Context(), req.ToSubmission(submitterID, submitterName))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/quotations/"+q.ID)
	c.JSON(http.StatusCreated, dto.NewQuotationResponse(q))
}

// Mine handles GET /api/v1/submissions/my. It returns the caller's submissions in every
// status, newest first.
func (h *SubmissionHandler) Mine(c *gin.Context) {
	var query dto.PageQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	page, err := h.catalog.MySubmissions(c.Request.Context(), middleware.GetClaims(c).Subject, query.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewQuotationResponse))
}

// RegisterRoutes registers submission routes on the given router group.
func (h *SubmissionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	submissions := rg.Group("/submissions")
	submissions.POST("", h.Submit)
	submissions.GET("/my", middleware.RequireAuth(), h.Mine)
}
