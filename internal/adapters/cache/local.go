package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jsamuelsen/quotations-service/internal/ports"
)

// Local is an in-process ports.Cache. Entries are not shared between instances.
type Local struct {
	store *gocache.Cache
}

// NewLocal creates a cache whose entries expire after defaultTTL and are purged every
// 2*defaultTTL.
func NewLocal(defaultTTL time.Duration) *Local {
	return &Local{store: gocache.New(defaultTTL, defaultTTL*2)}
}

func (l *Local) Get(_ context.Context, key string) ([]byte, error) {
	v, found := l.store.Get(key)
	if !found {
		return nil, ports.ErrCacheMiss
	}

	b, ok := v.([]byte)
	if !ok {
		return nil, ports.ErrCacheMiss
	}

	return append([]byte(nil), b...), nil
}

func (l *Local) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}

	l.store.Set(key, append([]byte(nil), value...), ttl)

	return nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	l.store.Delete(key)
	return nil
}
