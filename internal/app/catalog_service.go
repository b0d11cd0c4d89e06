package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
	"github.com/jsamuelsen/quotations-service/internal/platform/metrics"
	"github.com/jsamuelsen/quotations-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotations-service/internal/ports"
)

// Catalog listing limits.
const (
	DefaultCatalogLimit = 100
	MaxAuthorLimit      = 500
	MaxSourceLimit      = 500
	MaxTagLimit         = 500
)

// Cache keys hold the unlimited result; callers truncate to their limit.
const (
	cacheKeyTags    = "catalog:tags"
	cacheKeyAuthors = "catalog:authors"
)

// CatalogService serves the read side: browsing, search, the review queue and the
// author, source and tag catalogues.
type CatalogService struct {
	quotations ports.QuotationRepository
	authors    ports.AuthorRepository
	sources    ports.SourceRepository
	index      ports.QuotationIndex
	cache      ports.Cache
	directory  ports.AuthorDirectory
	cacheTTL   time.Duration
	metrics    *metrics.Recorder
}

// CatalogServiceConfig wires a CatalogService. Index, Cache and Directory may be nil.
type CatalogServiceConfig struct {
	Quotations ports.QuotationRepository
	Authors    ports.AuthorRepository
	Sources    ports.SourceRepository
	Index      ports.QuotationIndex
	Cache      ports.Cache
	Directory  ports.AuthorDirectory
	CacheTTL   time.Duration
	Metrics    *metrics.Recorder
}

// NewCatalogService panics when a repository is missing.
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	if cfg.Quotations == nil || cfg.Authors == nil || cfg.Sources == nil {
		panic("app: catalog service requires quotation, author and source repositories")
	}

	m := cfg.Metrics
	if m == nil {
		m = metrics.Noop()
	}

	return &CatalogService{
		quotations: cfg.Quotations,
		authors:    cfg.Authors,
		sources:    cfg.Sources,
		index:      cfg.Index,
		cache:      cfg.Cache,
		directory:  cfg.Directory,
		cacheTTL:   cfg.CacheTTL,
		metrics:    m,
	}
}

// List browses quotations. Without a status filter only approved quotations are returned.
func (s *CatalogService) List(ctx context.Context, filter domain.QuotationFilter, page domain.PageRequest) (*domain.Page[*domain.Quotation], error) {
	result, err := s.quotations.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}

	return result, nil
}

// Get returns one quotation regardless of status.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Quotation, error) {
	q, err := s.quotations.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quotation: %w", err)
	}

	return q, nil
}

// Search ranks approved quotations against query. The search index is preferred; when it
// fails the repository's own text search answers instead.
func (s *CatalogService) Search(ctx context.Context, query string, page domain.PageRequest) (*domain.Page[*domain.Quotation], error) {
	ctx, span := telemetry.Tracer().Start(ctx, "CatalogService.Search")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("q", "is required")
	}
	page = page.Normalize()

	if s.index != nil {
		ids, total, err := s.index.Search(ctx, query, page)
		if err == nil {
			return s.hydrate(ctx, ids, page, total)
		}

		s.metrics.SearchFallback()
		logging.FromContext(ctx).WarnContext(ctx, "search index failed, using repository search",
			slog.Any("error", err),
		)
	}

	result, err := s.quotations.Search(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("searching quotations: %w", err)
	}

	return result, nil
}

// hydrate loads indexed ids from the repository, dropping entries the index still holds
// but the repository no longer shows as approved. Dropped entries are taken off total.
func (s *CatalogService) hydrate(ctx context.Context, ids []string, page domain.PageRequest, total int) (*domain.Page[*domain.Quotation], error) {
	items := make([]*domain.Quotation, 0, len(ids))

	for _, id := range ids {
		q, err := s.quotations.Get(ctx, id)
		switch {
		case domain.IsNotFound(err):
			continue
		case err != nil:
			return nil, fmt.Errorf("loading search hit %s: %w", id, err)
		case q.Status != domain.StatusApproved:
			continue
		}
		items = append(items, q)
	}

	total = max(total-(len(ids)-len(items)), page.Offset()+len(items))

	return domain.NewPage(items, page, total), nil
}

// Pending returns the review queue, oldest submission first.
func (s *CatalogService) Pending(ctx context.Context, page domain.PageRequest) (*domain.Page[*domain.Quotation], error) {
	pending := domain.StatusPending
	return s.List(ctx, domain.QuotationFilter{Status: &pending}, page)
}

// MySubmissions returns every quotation the caller submitted, in any status.
func (s *CatalogService) MySubmissions(ctx context.Context, submitterID string, page domain.PageRequest) (*domain.Page[*domain.Quotation], error) {
	if submitterID == "" {
		return nil, domain.NewValidationError("submitterId", "is required")
	}

	return s.List(ctx, domain.QuotationFilter{SubmitterID: submitterID}, page)
}

// Tags returns the tag cloud over approved quotations, most used first.
func (s *CatalogService) Tags(ctx context.Context, limit int) ([]domain.TagCount, error) {
	tags, err := cached(ctx, s, cacheKeyTags, func(ctx context.Context) ([]domain.TagCount, error) {
		return s.quotations.TagCounts(ctx, 0)
	})
	if err != nil {
		return nil, fmt.Errorf("counting tags: %w", err)
	}

	return truncate(tags, clampLimit(limit, MaxTagLimit)), nil
}

// Authors lists authors by name.
func (s *CatalogService) Authors(ctx context.Context, limit int) ([]*domain.Author, error) {
	authors, err := cached(ctx, s, cacheKeyAuthors, func(ctx context.Context) ([]*domain.Author, error) {
		return s.authors.List(ctx, MaxAuthorLimit)
	})
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}

	return truncate(authors, clampLimit(limit, MaxAuthorLimit)), nil
}

// AuthorDetails is an author together with what the external directory knows about them.
type AuthorDetails struct {
	Author  *domain.Author
	Profile *domain.AuthorProfile
}

// Author returns one author. Directory failures leave Profile nil.
func (s *CatalogService) Author(ctx context.Context, id string) (*AuthorDetails, error) {
	author, err := s.authors.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting author: %w", err)
	}

	details := &AuthorDetails{Author: author}
	if s.directory == nil {
		return details, nil
	}

	profile, err := s.directory.Lookup(ctx, author.Name)
	switch {
	case err == nil:
		details.Profile = profile
	case domain.IsNotFound(err):
	default:
		logging.FromContext(ctx).WarnContext(ctx, "author directory lookup failed",
			slog.String("author_id", id),
			slog.Any("error", err),
		)
	}

	return details, nil
}

// Sources lists sources by title, optionally of one type.
func (s *CatalogService) Sources(ctx context.Context, typ *domain.SourceType, limit int) ([]*domain.Source, error) {
	sources, err := s.sources.List(ctx, typ, clampLimit(limit, MaxSourceLimit))
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}

	return sources, nil
}

// Source returns one source.
func (s *CatalogService) Source(ctx context.Context, id string) (*domain.Source, error) {
	source, err := s.sources.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting source: %w", err)
	}

	return source, nil
}

// cached reads key through the cache. Cache failures are logged and the loader is used.
func cached[T any](ctx context.Context, s *CatalogService, key string, load func(context.Context) (T, error)) (T, error) {
	if s.cache == nil {
		return load(ctx)
	}

	logger := logging.FromContext(ctx).With(slog.String("cache_key", key))

	raw, err := s.cache.Get(ctx, key)
	if err == nil {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		logger.WarnContext(ctx, "discarding undecodable cache entry")
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		logger.WarnContext(ctx, "cache read failed", slog.Any("error", err))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if raw, err := json.Marshal(v); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			logger.WarnContext(ctx, "cache write failed", slog.Any("error", err))
		}
	}

	return v, nil
}

func clampLimit(limit, maxLimit int) int {
	switch {
	case limit < 1:
		return DefaultCatalogLimit
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}

func truncate[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > n {
		return items[:n]
	}

	return items
}
