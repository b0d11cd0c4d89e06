package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotations-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotations-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotations-service/internal/app"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
)

type apiFixture struct {
	engine *gin.Engine
	store  *memory.Store
}

// newAPI serves every business route over a seeded in-memory store. Callers identify
// themselves with gateway headers.
func newAPI(t *testing.T) *apiFixture {
	t.Helper()

	store := memory.NewStore()
	seeder := &app.Seeder{Quotations: store.Quotations(), Authors: store.Authors(), Sources: store.Sources()}
	_, err := seeder.Seed(context.Background())
	require.NoError(t, err)

	catalog := app.NewCatalogService(app.CatalogServiceConfig{
		Quotations: store.Quotations(),
		Authors:    store.Authors(),
		Sources:    store.Sources(),
	})
	review := app.NewReviewService(app.ReviewServiceConfig{
		Quotations: store.Quotations(),
		Authors:    store.Authors(),
		Sources:    store.Sources(),
	})

	engine := gin.New()
	engine.Use(middleware.Authenticate(&config.AuthConfig{TrustGatewayHeaders: true}))

	api := engine.Group("/api/v1")
	NewQuotationHandler(catalog).RegisterRoutes(api)
	NewSubmissionHandler(review, catalog).RegisterRoutes(api)
	NewReviewHandler(review, catalog).RegisterRoutes(api)
	NewCatalogHandler(catalog).RegisterRoutes(api)

	return &apiFixture{engine: engine, store: store}
}

type caller struct {
	id    string
	name  string
	roles string
}

var (
	anonymous = caller{}
	alice     = caller{id: "u-alice", name: "alice"}
	moderator = caller{id: "u-mod", name: "mod", roles: "reviewer"}
)

func (f *apiFixture) do(method, path, body string, who caller) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if who.id != "" {
		req.Header.Set("X-User-ID", who.id)
	}
	if who.name != "" {
		req.Header.Set("X-User-Name", who.name)
	}
	if who.roles != "" {
		req.Header.Set("X-User-Roles", who.roles)
	}

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) dto.ErrorResponse {
	t.Helper()

	require.Equal(t, status, w.Code, w.Body.String())
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, code, resp.Error.Code)

	return resp
}

func TestQuotationHandler_List(t *testing.T) {
	f := newAPI(t)

	t.Run("first page", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/v1/quotations?pageSize=2", "", anonymous)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.PageResponse[dto.QuotationResponse]](t, w)
		assert.Len(t, resp.Items, 2)
		assert.Equal(t, dto.Pagination{
			Page: 1, PageSize: 2, TotalCount: 3, TotalPages: 2, HasNext: true, HasPrevious: false,
		}, resp.Pagination)

		for _, q := range resp.Items {
			assert.Equal(t, "approved", q.Status)
		}
	})

	t.Run("tag filter", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/v1/quotations?tags=science", "", anonymous)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.PageResponse[dto.QuotationResponse]](t, w)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Albert Einstein", resp.Items[0].Author.Name)
	})

	t.Run("out of range page size is clamped", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/v1/quotations?pageSize=1000", "", anonymous)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.PageResponse[dto.QuotationResponse]](t, w)
		assert.Equal(t, 100, resp.Pagination.PageSize)
	})

	t.Run("unreviewed statuses need a reviewer", func(t *testing.T) {
		f.submit(t, lennon, alice)

		w := f.do(http.MethodGet, "/api/v1/quotations?status=pending", "", anonymous)
		assertError(t, w, http.StatusUnauthorized, dto.ErrorCodeUnauthorized)

		w = f.do(http.MethodGet, "/api/v1/quotations?status=pending", "", alice)
		assertError(t, w, http.StatusForbidden, dto.ErrorCodeForbidden)

		w = f.do(http.MethodGet, "/api/v1/quotations?status=pending", "", moderator)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[dto.PageResponse[dto.QuotationResponse]](t, w).Items, 1)

		w = f.do(http.MethodGet, "/api/v1/quotations?status=approved", "", anonymous)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[dto.PageResponse[dto.QuotationResponse]](t, w).Items, 3)
	})

	t.Run("non-numeric page", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/v1/quotations?page=abc", "", anonymous)
		assertError(t, w, http.StatusBadRequest, dto.ErrorCodeBadRequest)
	})
}

func TestQuotationHandler_Search(t *testing.T) {
	f := newAPI(t)

	w := f.do(http.MethodGet, "/api/v1/quotations/search?q=imagination", "", anonymous)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.PageResponse[dto.QuotationResponse]](t, w)
	require.Len(t, resp.Items, 1)
	assert.Contains(t, resp.Items[0].Text, "Imagination")

	w = f.do(http.MethodGet, "/api/v1/quotations/search?q=%20", "", anonymous)
	errResp := assertError(t, w, http.StatusBadRequest, dto.ErrorCodeValidation)
	assert.Equal(t, "must not be blank", errResp.Error.Details["q"])
}

func TestQuotationHandler_Get(t *testing.T) {
	f := newAPI(t)

	w := f.do(http.MethodGet, "/api/v1/quotations?pageSize=1", "", anonymous)
	first := decode[dto.PageResponse[dto.QuotationResponse]](t, w).Items[0]

	w = f.do(http.MethodGet, "/api/v1/quotations/"+first.ID, "", anonymous)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, decode[dto.QuotationResponse](t, w))

	w = f.do(http.MethodGet, "/api/v1/quotations/does-not-exist", "", anonymous)
	assertError(t, w, http.StatusNotFound, dto.ErrorCodeNotFound)
}
