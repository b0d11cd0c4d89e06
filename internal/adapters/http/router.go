package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotations-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotations-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
	"github.com/jsamuelsen/quotations-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouteRegistrar is implemented by every business handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// ServiceName names the spans created by the tracing middleware.
	ServiceName string

	// AuthConfig controls bearer token validation and gateway header trust.
	AuthConfig *config.AuthConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// Handlers are mounted under /api/v1.
	Handlers []RouteRegistrar

	// Timeout is the request deadline for /api/v1. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and HTTP metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Authenticate - identify the caller; anonymous requests pass through
//  7. Timeout - request deadline on /api/v1 only
//
// Route groups:
//   - /-/ (internal): Health and metrics endpoints, no auth, no timeout
//   - /api/v1/ (public API): Business endpoints, auth enforced per route
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(
		middleware.Logging(),
		middleware.Authenticate(cfg.AuthConfig),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	for _, h := range cfg.Handlers {
		h.RegisterRoutes(apiV1)
	}

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
	})
	engine.NoMethod(func(c *gin.Context) {
		dto.RespondWithErrorCode(c, dto.ErrorCodeMethodNotAllowed, c.Request.Method+" is not supported on "+c.Request.URL.Path)
	})
}
