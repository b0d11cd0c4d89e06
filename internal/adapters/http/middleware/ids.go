// Package middleware holds the gin middleware of the quotations API.
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
)

const (
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID spans every request of one business transaction, across services.
	HeaderCorrelationID = "X-Correlation-ID"
)

// Inbound IDs longer than this are replaced rather than echoed into logs and headers.
const maxIDLength = 128

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// propagatedID is an identifier read from a request header, echoed on the response and
// forwarded to downstream calls.
type propagatedID struct {
	header string
	key    idKey
	logged func(ctx context.Context, id string) context.Context
}

var (
	requestID     = propagatedID{header: HeaderRequestID, key: requestIDKey, logged: logging.WithRequestID}
	correlationID = propagatedID{header: HeaderCorrelationID, key: correlationIDKey, logged: logging.WithCorrelationID}
)

// RequestID reuses the caller's X-Request-ID or mints a UUID, and tags the request logger
// with it.
func RequestID() gin.HandlerFunc { return requestID.middleware() }

// CorrelationID is RequestID for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc { return correlationID.middleware() }

func (p propagatedID) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(p.header))
		if id == "" || len(id) > maxIDLength {
			id = uuid.NewString()
		}

		c.Header(p.header, id)
		c.Request = c.Request.WithContext(p.logged(p.with(c.Request.Context(), id), id))

		c.Next()
	}
}

func (p propagatedID) with(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, p.key, id)
}

func (p propagatedID) from(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(p.key).(string)

	return id
}

func RequestIDFromContext(ctx context.Context) string     { return requestID.from(ctx) }
func CorrelationIDFromContext(ctx context.Context) string { return correlationID.from(ctx) }

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return requestID.with(ctx, id)
}

func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return correlationID.with(ctx, id)
}

// GetRequestID returns the request ID set by RequestID, or "" outside of it.
func GetRequestID(c *gin.Context) string { return RequestIDFromContext(c.Request.Context()) }

func GetCorrelationID(c *gin.Context) string { return CorrelationIDFromContext(c.Request.Context()) }
