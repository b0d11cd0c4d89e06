package ports

import (
	"context"
	"errors"
	"time"

	"github.com/jsamuelsen/quotations-service/internal/domain"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores opaque values for read-heavy catalog queries.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value for ttl. A ttl of zero means the adapter's default expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
}

// Event is a domain event published after a state change has been committed.
type Event interface {
	// EventType is the routing key, e.g. "quotation.approved".
	EventType() string
	Payload() any
}

// EventPublisher delivers events to subscribers outside the service.
type EventPublisher interface {
	// Publish returns domain.ErrUnavailable when the broker cannot be reached.
	Publish(ctx context.Context, event Event) error
}

// QuotationIndex is a full-text index over approved quotations.
type QuotationIndex interface {
	Index(ctx context.Context, q *domain.Quotation) error
	Remove(ctx context.Context, id string) error

	// Search returns the ids of matching quotations ordered by relevance, and the total
	// number of hits.
	Search(ctx context.Context, query string, page domain.PageRequest) (ids []string, total int, err error)
}

// AuthorDirectory looks up biographical data about authors in an external catalogue.
type AuthorDirectory interface {
	// Lookup returns domain.NotFoundError when the directory has no entry for name and
	// domain.ErrUnavailable when the directory cannot be reached.
	Lookup(ctx context.Context, name string) (*domain.AuthorProfile, error)
}
