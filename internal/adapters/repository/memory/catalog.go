package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen/quotations-service/internal/domain"
)

type authorRecord struct{ a *domain.Author }

type sourceRecord struct{ s *domain.Source }

// AuthorRepository implements ports.AuthorRepository.
type AuthorRepository struct {
	store *Store
}

func (r *AuthorRepository) FindByName(_ context.Context, name string) (*domain.Author, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if rec := r.findByName(name); rec != nil {
		return cloneAuthor(rec.a), nil
	}

	return nil, domain.NewNotFoundError(domain.EntityAuthor, name)
}

func (r *AuthorRepository) findByName(name string) *authorRecord {
	for _, rec := range r.store.authors {
		if strings.EqualFold(rec.a.Name, name) {
			return rec
		}
	}

	return nil
}

func (r *AuthorRepository) Get(_ context.Context, id string) (*domain.Author, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.authors[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityAuthor, id)
	}

	return cloneAuthor(rec.a), nil
}

func (r *AuthorRepository) Create(_ context.Context, a *domain.Author) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.findByName(a.Name) != nil {
		return domain.NewConflictError(domain.EntityAuthor, "name already exists")
	}
	r.store.authors[a.ID] = &authorRecord{a: cloneAuthor(a)}

	return nil
}

func (r *AuthorRepository) List(_ context.Context, limit int) ([]*domain.Author, error) {
	r.store.mu.RLock()
	out := make([]*domain.Author, 0, len(r.store.authors))
	for _, rec := range r.store.authors {
		out = append(out, cloneAuthor(rec.a))
	}
	r.store.mu.RUnlock()

	slices.SortFunc(out, func(a, b *domain.Author) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return limitSlice(out, limit), nil
}

func (r *AuthorRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.authors), nil
}

func (r *AuthorRepository) IncrementQuotationCount(_ context.Context, id string, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.authors[id]
	if !ok {
		return domain.NewNotFoundError(domain.EntityAuthor, id)
	}
	rec.a.QuotationCount += delta
	rec.a.UpdatedAt = time.Now().UTC()

	return nil
}

// SourceRepository implements ports.SourceRepository.
type SourceRepository struct {
	store *Store
}

func (r *SourceRepository) FindByTitleAndType(_ context.Context, title string, typ domain.SourceType) (*domain.Source, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if rec := r.find(title, typ); rec != nil {
		return cloneSource(rec.s), nil
	}

	return nil, domain.NewNotFoundError(domain.EntitySource, title)
}

func (r *SourceRepository) find(title string, typ domain.SourceType) *sourceRecord {
	for _, rec := range r.store.sources {
		if rec.s.Type == typ && strings.EqualFold(rec.s.Title, title) {
			return rec
		}
	}

	return nil
}

func (r *SourceRepository) Get(_ context.Context, id string) (*domain.Source, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.sources[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntitySource, id)
	}

	return cloneSource(rec.s), nil
}

func (r *SourceRepository) Create(_ context.Context, s *domain.Source) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.find(s.Title, s.Type) != nil {
		return domain.NewConflictError(domain.EntitySource, "title and type already exist")
	}
	r.store.sources[s.ID] = &sourceRecord{s: cloneSource(s)}

	return nil
}

func (r *SourceRepository) List(_ context.Context, typ *domain.SourceType, limit int) ([]*domain.Source, error) {
	r.store.mu.RLock()
	out := make([]*domain.Source, 0, len(r.store.sources))
	for _, rec := range r.store.sources {
		if typ != nil && rec.s.Type != *typ {
			continue
		}
		out = append(out, cloneSource(rec.s))
	}
	r.store.mu.RUnlock()

	slices.SortFunc(out, func(a, b *domain.Source) int {
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})

	return limitSlice(out, limit), nil
}

func (r *SourceRepository) IncrementQuotationCount(_ context.Context, id string, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.sources[id]
	if !ok {
		return domain.NewNotFoundError(domain.EntitySource, id)
	}
	rec.s.QuotationCount += delta
	rec.s.UpdatedAt = time.Now().UTC()

	return nil
}

func limitSlice[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
