package clients

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
)

func testConfig(baseURL string) *config.DirectoryConfig {
	return &config.DirectoryConfig{
		Enabled: true,
		Name:    "test-directory",
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*config.DirectoryConfig)) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL + "/")
	for _, m := range mutate {
		m(cfg)
	}

	c, err := New(cfg)
	require.NoError(t, err)

	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorContains(t, err, "config is required")

	cfg := testConfig("https://api.example.com")
	cfg.Name = ""
	_, err = New(cfg)
	assert.ErrorContains(t, err, "service name is required")

	cfg = testConfig("https://api.example.com/")
	c, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", c.baseURL)
	assert.Equal(t, "test-directory", c.Name())
	assert.Equal(t, StateClosed, c.CircuitState())
}

func TestClient_GetPropagatesHeadersAndQuery(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.WriteHeader(http.StatusOK)
	})

	ctx := middleware.ContextWithRequestID(context.Background(), "req-1")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-1")

	resp, err := c.Get(ctx, "search/authors", url.Values{"query": {"Maya Angelou"}})
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "/search/authors", got.URL.Path)
	assert.Equal(t, "Maya Angelou", got.URL.Query().Get("query"))
	assert.Equal(t, "req-1", got.Header.Get(middleware.HeaderRequestID))
	assert.Equal(t, "corr-1", got.Header.Get(middleware.HeaderCorrelationID))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	resp, err := c.Get(context.Background(), "/authors", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	resp, err := c.Get(context.Background(), "/authors/x", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, StateClosed, c.CircuitState(), "4xx is a healthy answer")
}

func TestClient_MaxRetriesExceededOpensCircuit(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, func(cfg *config.DirectoryConfig) {
		cfg.CircuitBreaker.MaxFailures = 2
	})

	for range 2 {
		_, err := c.Get(context.Background(), "/authors", nil)
		assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
	}
	assert.Equal(t, int32(6), calls.Load())
	assert.Equal(t, StateOpen, c.CircuitState())

	_, err := c.Get(context.Background(), "/authors", nil)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(6), calls.Load(), "open circuit short-circuits")
}

func TestClient_ContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, func(cfg *config.DirectoryConfig) {
		cfg.Retry.InitialInterval = time.Second
		cfg.Retry.MaxInterval = time.Second
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Get(ctx, "/authors", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrMaxRetriesExceeded)
}

func TestClient_AuthAppliedOnEveryAttempt(t *testing.T) {
	var calls atomic.Int32
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var n atomic.Int32
	c, err := New(testConfig(srv.URL), WithAuth(func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer token-"+string(rune('0'+n.Add(1))))
	}))
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), "/", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	require.Len(t, seen, 2)
	assert.Equal(t, "Bearer token-1", seen[0])
	assert.Equal(t, "Bearer token-2", seen[1])
}

func TestClient_WithTransport(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://directory.test/ping",
		httpmock.NewStringResponder(http.StatusOK, `{"ok":true}`))

	c, err := New(testConfig("https://directory.test"), WithTransport(transport))
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), "/ping", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestClient_Backoff(t *testing.T) {
	c, err := New(testConfig("https://api.example.com"))
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, c.backoff(1))
	assert.Equal(t, 20*time.Millisecond, c.backoff(2))
	assert.Equal(t, 20*time.Millisecond, c.backoff(5), "capped at max interval")

	c.retry.JitterFactor = 0.5
	for range 100 {
		d := c.backoff(1)
		assert.GreaterOrEqual(t, d, 5*time.Millisecond)
		assert.LessOrEqual(t, d, 15*time.Millisecond)
	}
}

type testNetError struct{ timeout bool }

func (e testNetError) Error() string   { return "test net error" }
func (e testNetError) Timeout() bool   { return e.timeout }
func (e testNetError) Temporary() bool { return true }

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"timeout", testNetError{timeout: true}, true},
		{"non-timeout net error", testNetError{}, false},
		{"connection refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, true},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
