// Package clients calls downstream HTTP services with retries, a circuit breaker and
// trace propagation.
package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/quotations-service/internal/adapters/clients"

	defaultTimeout = 5 * time.Second

	transportMaxIdleConns        = 20
	transportMaxIdleConnsPerHost = 5
	transportIdleConnTimeout     = 90 * time.Second
)

var (
	// ErrCircuitOpen is returned without calling the downstream service.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last attempt's error.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// Option customises a Client.
type Option func(*Client)

// WithTransport replaces the HTTP transport, e.g. with an httpmock transport in tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.Transport = rt }
}

// WithLogger sets the base logger. Request-scoped loggers from the context take precedence.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithAuth injects credentials into every attempt, including retries.
func WithAuth(fn func(*http.Request)) Option {
	return func(c *Client) { c.auth = fn }
}

// Client is a read-only HTTP client for a downstream service. Each call is retried with
// exponential backoff and jitter on transport errors and 5xx responses, guarded by a circuit
// breaker, traced, and measured.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	retry   config.RetryConfig
	cb      *CircuitBreaker
	auth    func(*http.Request)
	logger  *slog.Logger

	tracer          trace.Tracer
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New builds a client for the service described by cfg.
func New(cfg *config.DirectoryConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Name == "" {
		return nil, errors.New("service name is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retry := cfg.Retry
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of outbound HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Outbound HTTP requests by result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	c := &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        transportMaxIdleConns,
				MaxIdleConnsPerHost: transportMaxIdleConnsPerHost,
				IdleConnTimeout:     transportIdleConnTimeout,
			},
		},
		baseURL:         strings.TrimSuffix(cfg.BaseURL, "/"),
		name:            cfg.Name,
		retry:           retry,
		cb:              NewCircuitBreaker(cfg.CircuitBreaker),
		logger:          slog.Default(),
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}

	for _, opt := range opts {
		opt(c)
	}

	logger := c.logger.With(slog.String("downstream", c.name))
	c.cb.OnStateChange(func(from, to State) {
		logger.Warn("circuit breaker state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	return c, nil
}

// Name identifies the downstream service.
func (c *Client) Name() string { return c.name }

// CircuitState returns the breaker's current state.
func (c *Client) CircuitState() State { return c.cb.State() }

// Get issues GET baseURL+path?query. The caller must close the response body. Non-2xx
// responses below 500 are returned as-is; mapping them is the caller's concern.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	target := c.buildURL(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.Do(ctx, req)
}

// Do executes req. Only requests without a body, or with GetBody set, can be retried safely.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.name),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if !c.cb.Allow() {
		c.recordMetrics(ctx, req.Method, 0, time.Since(start), "circuit_open")
		logger.Warn("request blocked by circuit breaker")
		return nil, ErrCircuitOpen
	}

	c.injectHeaders(ctx, req)

	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.name),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.attempt(ctx, req, logger)
	duration := time.Since(start)

	if err != nil {
		c.cb.RecordFailure()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, req.Method, 0, duration, "error")
		logger.Warn("request failed", slog.Duration("duration", duration), slog.Any("error", err))

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, err)
	}

	c.cb.RecordSuccess()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
	c.recordMetrics(ctx, req.Method, resp.StatusCode, duration, fmt.Sprintf("%dxx", resp.StatusCode/100))

	logger.Debug("request completed", slog.Int("status", resp.StatusCode), slog.Duration("duration", duration))

	return resp, nil
}

func (c *Client) attempt(ctx context.Context, req *http.Request, logger *slog.Logger) (*http.Response, error) {
	var lastErr error

	for attempt := range c.retry.MaxAttempts {
		if attempt > 0 {
			backoff := c.backoff(attempt)
			logger.Debug("retrying request", slog.Int("attempt", attempt+1), slog.Duration("backoff", backoff))

			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}

			if c.auth != nil {
				c.auth(req)
			}
		}

		resp, err := c.http.Do(req.WithContext(ctx))
		switch {
		case err != nil:
			if !isRetryableError(err) {
				return nil, err
			}
			lastErr = err

		case resp.StatusCode >= http.StatusInternalServerError:
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)

		default:
			return resp, nil
		}
	}

	return nil, lastErr
}

func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if requestID := middleware.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}
	if correlationID := middleware.CorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(middleware.HeaderCorrelationID, correlationID)
	}
	if c.auth != nil {
		c.auth(req)
	}
}

func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

// backoff returns initial*multiplier^attempt capped at MaxInterval, spread by ±JitterFactor.
func (c *Client) backoff(attempt int) time.Duration {
	d := float64(c.retry.InitialInterval) * math.Pow(c.retry.Multiplier, float64(attempt))
	if limit := float64(c.retry.MaxInterval); limit > 0 && d > limit {
		d = limit
	}

	if c.retry.JitterFactor > 0 {
		spread := rand.Float64()*2 - 1 //nolint:gosec // jitter does not need a CSPRNG
		d += d * c.retry.JitterFactor * spread
	}

	return time.Duration(d)
}

func (c *Client) recordMetrics(ctx context.Context, method string, status int, d time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.name),
		attribute.String("result", result),
	}
	if status > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", status))
	}

	c.requestDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attrs...))
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// isRetryableError reports whether a transport error is worth another attempt.
func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}
