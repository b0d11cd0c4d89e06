// Package ports declares the contracts between the application layer and its adapters.
//
// Every method takes a context first, returns domain types and reports failures with the
// domain error taxonomy (NotFoundError, ConflictError, InvalidStateError). Infrastructure
// failures are returned wrapped but otherwise unmodified.
package ports

import (
	"context"

	"github.com/jsamuelsen/quotations-service/internal/domain"
)

// QuotationRepository persists quotations.
type QuotationRepository interface {
	// List returns one page of quotations matching filter. See domain.QuotationFilter for the
	// default status rule.
	List(ctx context.Context, filter domain.QuotationFilter, page domain.PageRequest) (*domain.Page[*domain.Quotation], error)

	// Get returns domain.NotFoundError when id does not resolve.
	Get(ctx context.Context, id string) (*domain.Quotation, error)

	// Search ranks approved quotations by relevance to query.
	Search(ctx context.Context, query string, page domain.PageRequest) (*domain.Page[*domain.Quotation], error)

	Create(ctx context.Context, q *domain.Quotation) error

	// Update replaces the stored quotation. Returns domain.NotFoundError when absent.
	Update(ctx context.Context, q *domain.Quotation) error

	// CompareAndSetReview writes the review fields of q only if the stored status still
	// equals expected. Otherwise it returns domain.InvalidStateError carrying the stored
	// status, or domain.NotFoundError.
	CompareAndSetReview(ctx context.Context, q *domain.Quotation, expected domain.Status) error

	Delete(ctx context.Context, id string) error

	// FindDuplicateCandidates returns at most limit quotations by the same author and source
	// whose status is in statuses, excluding excludeID.
	FindDuplicateCandidates(ctx context.Context, authorID, sourceID string, statuses []domain.Status, excludeID string, limit int) ([]*domain.Quotation, error)

	// TagCounts aggregates tag usage over approved quotations, most used first.
	// A limit of zero or less means no limit.
	TagCounts(ctx context.Context, limit int) ([]domain.TagCount, error)
}

// AuthorRepository persists canonical authors.
type AuthorRepository interface {
	// FindByName matches the name case-insensitively. Returns domain.NotFoundError when absent.
	FindByName(ctx context.Context, name string) (*domain.Author, error)
	Get(ctx context.Context, id string) (*domain.Author, error)

	// Create returns domain.ConflictError when the name is taken.
	Create(ctx context.Context, a *domain.Author) error

	// List returns authors sorted by name.
	List(ctx context.Context, limit int) ([]*domain.Author, error)
	Count(ctx context.Context) (int, error)
	IncrementQuotationCount(ctx context.Context, id string, delta int) error
}

// SourceRepository persists canonical sources.
type SourceRepository interface {
	// FindByTitleAndType matches the title case-insensitively and the type exactly.
	FindByTitleAndType(ctx context.Context, title string, typ domain.SourceType) (*domain.Source, error)
	Get(ctx context.Context, id string) (*domain.Source, error)

	// Create returns domain.ConflictError when the (title, type) pair is taken.
	Create(ctx context.Context, s *domain.Source) error

	// List returns sources sorted by title, optionally restricted to one type.
	List(ctx context.Context, typ *domain.SourceType, limit int) ([]*domain.Source, error)
	IncrementQuotationCount(ctx context.Context, id string, delta int) error
}
