package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotations-service/internal/app"
	"github.com/jsamuelsen/quotations-service/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req

	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())

	return resp
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeNotFound, "resource not found")

	assert.Equal(t, &ErrorResponse{
		Error: ErrorDetail{Code: ErrorCodeNotFound, Message: "resource not found"},
	}, resp)

	details := map[string]string{"text": "is required"}
	resp = NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", details).WithTraceID("abc")

	assert.Equal(t, details, resp.Error.Details)
	assert.Equal(t, "abc", resp.TraceID)
}

func TestErrorResponse_JSONShape(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse(ErrorCodeConflict, "taken"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":{"code":"CONFLICT","message":"taken"}}`, string(b))
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeInvalidState, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]string
	}{
		{
			name:        "not found",
			err:         domain.NewNotFoundError(domain.EntityQuotation, "q-1"),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: `quotation with id "q-1" not found`,
		},
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("getting author: %w", domain.NewNotFoundError(domain.EntityAuthor, "a-1")),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: `getting author: author with id "a-1" not found`,
		},
		{
			name:        "invalid state",
			err:         domain.NewInvalidStateError(domain.EntityQuotation, "q-1", "approve", domain.StatusRejected),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrorCodeInvalidState,
			wantMessage: `cannot approve quotation "q-1": status is rejected, expected pending`,
		},
		{
			name:        "conflict",
			err:         domain.NewConflictError(domain.EntityAuthor, "name already exists"),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrorCodeConflict,
			wantMessage: "author conflict: name already exists",
		},
		{
			name: "validation with several fields",
			err: &domain.ValidationError{
				Field:   "text",
				Message: "is required",
				Fields:  map[string]string{"text": "is required", "sourceType": "must be one of book"},
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "validation failed: sourceType: must be one of book; text: is required",
			wantDetails: map[string]string{"text": "is required", "sourceType": "must be one of book"},
		},
		{
			name:        "single field validation",
			err:         domain.NewValidationError("q", "is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "validation failed for q: is required",
			wantDetails: map[string]string{"q": "is required"},
		},
		{
			name:        "forbidden",
			err:         domain.NewForbiddenError("review", "reviewer role required"),
			wantStatus:  http.StatusForbidden,
			wantCode:    ErrorCodeForbidden,
			wantMessage: `operation "review" forbidden: reviewer role required`,
		},
		{
			name:        "unavailable",
			err:         domain.NewUnavailableError("database", "connection refused"),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    ErrorCodeUnavailable,
			wantMessage: `service "database" unavailable: connection refused`,
		},
		{
			name:        "deadline exceeded",
			err:         fmt.Errorf("listing quotations: %w", context.DeadlineExceeded),
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    ErrorCodeTimeout,
			wantMessage: "request timed out",
		},
		{
			name:        "unknown errors hide their message",
			err:         errors.New("pq: password authentication failed"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}

	t.Run("nil", func(t *testing.T) {
		status, resp := MapDomainError(nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Nil(t, resp)
	})
}

func TestGetTraceID(t *testing.T) {
	c, _ := testContext(http.MethodGet, "/", "")
	assert.Empty(t, GetTraceID(c), "no span")

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	c.Request = c.Request.WithContext(trace.ContextWithSpanContext(c.Request.Context(), sc))

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", GetTraceID(c))
}

func TestHandleError(t *testing.T) {
	c, w := testContext(http.MethodGet, "/", "")

	HandleError(c, domain.NewNotFoundError(domain.EntitySource, "s-9"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
	assert.NotContains(t, w.Body.String(), "traceId", "omitted outside a span")

	c, w = testContext(http.MethodGet, "/", "")
	HandleError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "an internal error occurred", decodeError(t, w).Error.Message)
}

func TestAbortWithErrorCode(t *testing.T) {
	c, w := testContext(http.MethodGet, "/", "")

	AbortWithErrorCode(c, ErrorCodeUnauthorized, "authentication required")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "authentication required", decodeError(t, w).Error.Message)
}

func TestPageQuery_ToDomain(t *testing.T) {
	tests := []struct {
		name  string
		query PageQuery
		want  domain.PageRequest
	}{
		{"defaults", PageQuery{}, domain.PageRequest{Page: 1, PageSize: 20}},
		{"explicit", PageQuery{Page: 3, PageSize: 50}, domain.PageRequest{Page: 3, PageSize: 50}},
		{"clamped", PageQuery{Page: -2, PageSize: 500}, domain.PageRequest{Page: 1, PageSize: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.ToDomain())
		})
	}
}

func TestNewPageResponse(t *testing.T) {
	page := domain.NewPage([]int{1, 2}, domain.PageRequest{Page: 2, PageSize: 2}, 5)

	resp := NewPageResponse(page, func(i int) string { return fmt.Sprintf("item-%d", i) })

	assert.Equal(t, []string{"item-1", "item-2"}, resp.Items)
	assert.Equal(t, Pagination{
		Page: 2, PageSize: 2, TotalCount: 5, TotalPages: 3, HasNext: true, HasPrevious: true,
	}, resp.Pagination)

	b, err := json.Marshal(NewPageResponse(domain.NewPage[int](nil, domain.PageRequest{}, 0), func(i int) int { return i }))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"pagination":{"page":1,"pageSize":20,"totalCount":0,"totalPages":0,"hasNext":false,"hasPrevious":false}}`, string(b))
}

func TestNewListResponse(t *testing.T) {
	b, err := json.Marshal(NewListResponse([]string(nil), strings.ToUpper))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(b))

	assert.Equal(t, []string{"A", "B"}, NewListResponse([]string{"a", "b"}, strings.ToUpper).Items)
}

func TestNewQuotationResponse(t *testing.T) {
	submitted := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	q := domain.NewQuotation("q-1", "Stay hungry, stay foolish.",
		domain.AuthorRef{ID: "a-1", Name: "Steve Jobs"},
		domain.SourceRef{ID: "s-1", Title: "Stanford Commencement", Type: domain.SourceTypeSpeech},
		nil, nil, submitted)

	resp := NewQuotationResponse(q)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "speech", resp.Source.Type)
	assert.Equal(t, []string{}, resp.Tags)
	assert.Nil(t, resp.SubmittedBy)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "reviewedAt")
	assert.NotContains(t, string(b), "submittedBy")

	require.NoError(t, q.Approve(domain.UserRef{ID: "r-1", Username: "rita"}, "checked", submitted.Add(time.Hour)))

	resp = NewQuotationResponse(q)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, &UserResponse{ID: "r-1", Username: "rita"}, resp.ReviewedBy)
	require.NotNil(t, resp.ReviewedAt)
	assert.Equal(t, "checked", resp.ReviewerNotes)
}

func TestListQuotationsQuery_Filter(t *testing.T) {
	approved := domain.StatusApproved
	book := domain.SourceTypeBook

	tests := []struct {
		name  string
		query ListQuotationsQuery
		want  domain.QuotationFilter
	}{
		{"empty", ListQuotationsQuery{}, domain.QuotationFilter{}},
		{
			"every filter",
			ListQuotationsQuery{Status: "APPROVED", AuthorID: " a-1 ", SourceType: "Book", Tags: "life, ,love"},
			domain.QuotationFilter{Status: &approved, AuthorID: "a-1", SourceType: &book, Tags: []string{"life", "love"}},
		},
		{
			"unknown values are ignored",
			ListQuotationsQuery{Status: "archived", SourceType: "podcast"},
			domain.QuotationFilter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Filter())
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Nil(t, SplitTags(" , "))
	assert.Equal(t, []string{"a", "b c"}, SplitTags("a,, b c ,"))
}

func TestListSourcesQuery_SourceType(t *testing.T) {
	assert.Nil(t, ListSourcesQuery{}.SourceType())
	assert.Nil(t, ListSourcesQuery{Type: "vinyl"}.SourceType())

	got := ListSourcesQuery{Type: "Movie"}.SourceType()
	require.NotNil(t, got)
	assert.Equal(t, domain.SourceTypeMovie, *got)
}

func TestSubmitQuotationRequest_ToSubmission(t *testing.T) {
	year := 1980
	req := SubmitQuotationRequest{
		Text: "t", AuthorName: "a", SourceTitle: "s", SourceType: "book", SourceYear: &year, Tags: []string{"x"},
	}

	sub := req.ToSubmission("u-1", "alice")

	assert.Equal(t, "u-1", sub.SubmitterID)
	assert.Equal(t, "alice", sub.SubmitterName)
	assert.Equal(t, &year, sub.SourceYear)
	assert.Equal(t, []string{"x"}, sub.Tags)
}

func TestNewAuthorDetailsResponse(t *testing.T) {
	author := &domain.Author{ID: "a-1", Name: "Ada Lovelace", QuotationCount: 2}

	resp := NewAuthorDetailsResponse(&app.AuthorDetails{Author: author})
	assert.Nil(t, resp.Profile)
	assert.Equal(t, 2, resp.QuotationCount)

	resp = NewAuthorDetailsResponse(&app.AuthorDetails{
		Author:  author,
		Profile: &domain.AuthorProfile{Description: "Mathematician", Link: "https://example.org/ada"},
	})
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "Mathematician", resp.Profile.Description)
	assert.Equal(t, "https://example.org/ada", resp.Profile.Link)
}

func TestValidator(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr bool
	}{
		{"valid rejection", &RejectQuotationRequest{RejectionReason: "Misattributed quote."}, false},
		{"reason too short", &RejectQuotationRequest{RejectionReason: "nope"}, true},
		{"reason blank", &RejectQuotationRequest{RejectionReason: "              "}, true},
		{"notes too long", &ApproveQuotationRequest{ReviewerNotes: strings.Repeat("n", 1001)}, true},
		{"empty approval", &ApproveQuotationRequest{}, false},
		{"negative limit", &LimitQuery{Limit: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		c, _ := testContext(http.MethodPost, "/", `{"rejectionReason":"Not a real quotation."}`)

		var req RejectQuotationRequest
		require.NoError(t, BindAndValidate(c, &req))
		assert.Equal(t, "Not a real quotation.", req.RejectionReason)
	})

	t.Run("malformed body", func(t *testing.T) {
		c, _ := testContext(http.MethodPost, "/", `{"rejectionReason":`)

		var req RejectQuotationRequest
		assert.ErrorIs(t, BindAndValidate(c, &req), ErrBinding)
	})

	t.Run("missing body is a binding error", func(t *testing.T) {
		c, _ := testContext(http.MethodPost, "/", "")

		var req RejectQuotationRequest
		assert.ErrorIs(t, BindAndValidate(c, &req), ErrBinding)
	})
}

func TestBindOptionalJSONAndValidate(t *testing.T) {
	c, _ := testContext(http.MethodPost, "/", "")

	var req ApproveQuotationRequest
	require.NoError(t, BindOptionalJSONAndValidate(c, &req))
	assert.Empty(t, req.ReviewerNotes)

	c, _ = testContext(http.MethodPost, "/", `{"reviewerNotes":"ok"}`)
	require.NoError(t, BindOptionalJSONAndValidate(c, &req))
	assert.Equal(t, "ok", req.ReviewerNotes)

	c, _ = testContext(http.MethodPost, "/", `[`)
	assert.ErrorIs(t, BindOptionalJSONAndValidate(c, &req), ErrBinding)
}

func TestBindQueryAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   url.Values
		wantErr error
	}{
		{"valid", url.Values{"q": {"love"}, "page": {"2"}}, nil},
		{"blank q", url.Values{"q": {"   "}}, ErrValidation},
		{"non-numeric page", url.Values{"q": {"love"}, "page": {"two"}}, ErrBinding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testContext(http.MethodGet, "/?"+tt.query.Encode(), "")

			var query SearchQuotationsQuery
			err := BindQueryAndValidate(c, &query)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "love", query.Q)
				assert.Equal(t, 2, query.Page)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRespondWithBindError(t *testing.T) {
	t.Run("field errors", func(t *testing.T) {
		c, w := testContext(http.MethodGet, "/?q=", "")

		var query SearchQuotationsQuery
		err := BindQueryAndValidate(c, &query)
		require.Error(t, err)

		RespondWithBindError(c, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, ErrorCodeValidation, resp.Error.Code)
		assert.Equal(t, "request validation failed", resp.Error.Message)
		assert.Equal(t, map[string]string{"q": "must not be blank"}, resp.Error.Details)
	})

	t.Run("malformed input", func(t *testing.T) {
		c, w := testContext(http.MethodPost, "/", `{"reviewerNotes": 12}`)

		var req ApproveQuotationRequest
		err := BindAndValidate(c, &req)
		require.Error(t, err)

		RespondWithBindError(c, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, ErrorCodeBadRequest, resp.Error.Code)
		assert.True(t, strings.HasPrefix(resp.Error.Message, "malformed request: "), resp.Error.Message)
		assert.NotContains(t, resp.Error.Message, ErrBinding.Error())
		assert.Nil(t, resp.Error.Details)
	})
}

func TestValidationErrors(t *testing.T) {
	err := Validate(&RejectQuotationRequest{ReviewerNotes: strings.Repeat("x", 1001)})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"rejectionReason": "this field is required",
		"reviewerNotes":   "must be at most 1000 characters",
	}, ValidationErrors(err))

	assert.Empty(t, ValidationErrors(errors.New("not a validation error")))
}

func TestValidationMessage(t *testing.T) {
	type input struct {
		Name  string   `json:"name"  validate:"required"`
		Title string   `json:"title" validate:"notblank"`
		Count int      `json:"count" validate:"min=1,max=10"`
		Role  string   `json:"role"  validate:"oneof=reviewer admin"`
		Text  string   `json:"text"  validate:"min=5"`
		Age   int      `json:"age"   validate:"gte=0,lte=120"`
		Tags  []string `json:"tags"  validate:"max=2"`
		Year  int      `form:"year"  validate:"lte=2100"`
		Email string   `json:"email" validate:"email"`
	}

	err := Validator().Struct(&input{
		Name:  "",
		Title: "   ",
		Count: 20,
		Role:  "guest",
		Text:  "abc",
		Age:   150,
		Tags:  []string{"a", "b", "c"},
		Year:  3000,
		Email: "nope",
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	want := map[string]string{
		"name":  "this field is required",
		"title": "must not be blank",
		"count": "must be at most 10",
		"role":  "must be one of: reviewer admin",
		"text":  "must be at least 5 characters",
		"age":   "must be less than or equal to 120",
		"tags":  "must be at most 2 items",
		"year":  "must be less than or equal to 2100",
		"email": "failed validation: email",
	}

	got := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		got[fe.Field()] = validationMessage(fe)
	}

	assert.Equal(t, want, got)
}

func TestMinMaxMessage(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		param string
		kind  reflect.Kind
		want  string
	}{
		{"min string", "min", "10", reflect.String, "must be at least 10 characters"},
		{"max string", "max", "1000", reflect.String, "must be at most 1000 characters"},
		{"max slice", "max", "10", reflect.Slice, "must be at most 10 items"},
		{"min int", "min", "1", reflect.Int, "must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, minMaxMessage(tt.tag, tt.param, tt.kind))
		})
	}
}
