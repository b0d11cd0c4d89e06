//go:build integration

package integration

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	router "github.com/jsamuelsen/quotations-service/internal/adapters/http"
	"github.com/jsamuelsen/quotations-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotations-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotations-service/internal/app"
	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
	"github.com/jsamuelsen/quotations-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// serviceOptions selects the optional adapters of an in-process service.
type serviceOptions struct {
	directory interface {
		ports.AuthorDirectory
		ports.HealthChecker
	}
}

// startService serves the full router over a seeded in-memory store. Callers authenticate
// with gateway headers.
func startService(tb testing.TB, opts serviceOptions) *httptest.Server {
	tb.Helper()

	store := memory.NewStore()
	seeder := &app.Seeder{Quotations: store.Quotations(), Authors: store.Authors(), Sources: store.Sources()}
	_, err := seeder.Seed(context.Background())
	require.NoError(tb, err)

	health := ports.NewHealthRegistry()
	catalogCfg := app.CatalogServiceConfig{
		Quotations: store.Quotations(),
		Authors:    store.Authors(),
		Sources:    store.Sources(),
	}
	if opts.directory != nil {
		catalogCfg.Directory = opts.directory
		require.NoError(tb, health.RegisterOptional(opts.directory))
	}

	duplicates, err := domain.NewDuplicateStrategy("positional", 0)
	require.NoError(tb, err)

	catalog := app.NewCatalogService(catalogCfg)
	review := app.NewReviewService(app.ReviewServiceConfig{
		Quotations: store.Quotations(),
		Authors:    store.Authors(),
		Sources:    store.Sources(),
		Duplicates: duplicates,
	})

	engine := gin.New()
	router.SetupRouter(engine, router.RouterConfig{
		ServiceName: "quotations-integration",
		AuthConfig:  &config.AuthConfig{TrustGatewayHeaders: true},
		HealthHandler: handlers.NewHealthHandler(health,
			handlers.NewBuildInfo("test", "none", "now"), prometheus.NewRegistry()),
		Handlers: []router.RouteRegistrar{
			handlers.NewQuotationHandler(catalog),
			handlers.NewSubmissionHandler(review, catalog),
			handlers.NewReviewHandler(review, catalog),
			handlers.NewCatalogHandler(catalog),
		},
		Timeout: config.DefaultRequestTimeout,
	})

	srv := httptest.NewServer(engine)
	tb.Cleanup(srv.Close)

	return srv
}

// identity is sent as gateway headers. The zero value is anonymous.
type identity struct {
	id    string
	roles string
}

var (
	anonymous = identity{}
	submitter = identity{id: "u-submitter"}
	reviewer  = identity{id: "u-reviewer", roles: "reviewer"}
)

func newRequest(ctx context.Context, method, url, body string, who identity) (*http.Request, error) {
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if who.id != "" {
		req.Header.Set("X-User-ID", who.id)
	}
	if who.roles != "" {
		req.Header.Set("X-User-Roles", who.roles)
	}

	return req, nil
}

// call sends one request and returns the status and body.
func call(tb testing.TB, method, url, body string, who identity) (int, []byte) {
	tb.Helper()

	req, err := newRequest(context.Background(), method, url, body, who)
	require.NoError(tb, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(tb, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(tb, err)

	return resp.StatusCode, data
}
