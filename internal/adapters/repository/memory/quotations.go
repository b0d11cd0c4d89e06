package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/jsamuelsen/quotations-service/internal/domain"
)

type quotationRecord struct {
	q   *domain.Quotation
	seq int64
}

// QuotationRepository implements ports.QuotationRepository.
type QuotationRepository struct {
	store *Store
}

func (r *QuotationRepository) List(_ context.Context, filter domain.QuotationFilter, page domain.PageRequest) (*domain.Page[*domain.Quotation], error) {
	page = page.Normalize()
	status := filter.EffectiveStatus()

	r.store.mu.RLock()
	matches := make([]*quotationRecord, 0)
	for _, id := range r.store.order {
		rec := r.store.quotations[id]
		if matchesFilter(rec.q, filter, status) {
			matches = append(matches, rec)
		}
	}
	r.store.mu.RUnlock()

	oldestFirst := filter.OldestFirst()
	slices.SortStableFunc(matches, func(a, b *quotationRecord) int {
		c := a.q.SubmittedAt.Compare(b.q.SubmittedAt)
		if c == 0 {
			c = cmp.Compare(a.seq, b.seq)
		}
		if oldestFirst {
			return c
		}
		return -c
	})

	return paginate(matches, page), nil
}

func matchesFilter(q *domain.Quotation, f domain.QuotationFilter, status *domain.Status) bool {
	if status != nil && q.Status != *status {
		return false
	}
	if f.AuthorID != "" && q.Author.ID != f.AuthorID {
		return false
	}
	if f.SourceType != nil && q.Source.Type != *f.SourceType {
		return false
	}
	if f.SubmitterID != "" && (q.SubmittedBy == nil || q.SubmittedBy.ID != f.SubmitterID) {
		return false
	}

	return q.HasAllTags(f.Tags)
}

func paginate(recs []*quotationRecord, page domain.PageRequest) *domain.Page[*domain.Quotation] {
	total := len(recs)
	start := min(page.Offset(), total)
	end := min(start+page.PageSize, total)

	items := make([]*domain.Quotation, 0, end-start)
	for _, rec := range recs[start:end] {
		items = append(items, cloneQuotation(rec.q))
	}

	return domain.NewPage(items, page, total)
}

func (r *QuotationRepository) Get(_ context.Context, id string) (*domain.Quotation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.quotations[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	return cloneQuotation(rec.q), nil
}

// Search matches approved quotations containing any query term in their text, author name
// or tags, ranked by the number of distinct terms matched.
func (r *QuotationRepository) Search(_ context.Context, query string, page domain.PageRequest) (*domain.Page[*domain.Quotation], error) {
	page = page.Normalize()
	terms := strings.Fields(strings.ToLower(query))

	type hit struct {
		rec   *quotationRecord
		score int
	}

	r.store.mu.RLock()
	hits := make([]hit, 0)
	for _, id := range r.store.order {
		rec := r.store.quotations[id]
		if rec.q.Status != domain.StatusApproved {
			continue
		}
		if score := relevance(rec.q, terms); score > 0 {
			hits = append(hits, hit{rec: rec, score: score})
		}
	}
	r.store.mu.RUnlock()

	slices.SortStableFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return b.rec.q.SubmittedAt.Compare(a.rec.q.SubmittedAt)
	})

	recs := make([]*quotationRecord, len(hits))
	for i, h := range hits {
		recs[i] = h.rec
	}

	return paginate(recs, page), nil
}

func relevance(q *domain.Quotation, terms []string) int {
	haystack := strings.ToLower(q.Text + " " + q.Author.Name + " " + strings.Join(q.Tags, " "))

	score := 0
	for _, t := range terms {
		if strings.Contains(haystack, t) {
			score++
		}
	}

	return score
}

func (r *QuotationRepository) Create(_ context.Context, q *domain.Quotation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.quotations[q.ID]; exists {
		return domain.NewConflictError(domain.EntityQuotation, "id already exists")
	}

	r.store.quotations[q.ID] = &quotationRecord{q: cloneQuotation(q), seq: r.store.next()}
	r.store.order = append(r.store.order, q.ID)

	return nil
}

func (r *QuotationRepository) Update(_ context.Context, q *domain.Quotation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.quotations[q.ID]
	if !ok {
		return domain.NewNotFoundError(domain.EntityQuotation, q.ID)
	}
	rec.q = cloneQuotation(q)

	return nil
}

func (r *QuotationRepository) CompareAndSetReview(_ context.Context, q *domain.Quotation, expected domain.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.quotations[q.ID]
	if !ok {
		return domain.NewNotFoundError(domain.EntityQuotation, q.ID)
	}
	if rec.q.Status != expected {
		return domain.NewInvalidStateError(domain.EntityQuotation, q.ID, reviewAction(q.Status), rec.q.Status)
	}

	stored := rec.q
	stored.Status = q.Status
	stored.ReviewedBy = cloneUser(q.ReviewedBy)
	stored.ReviewedAt = cloneTime(q.ReviewedAt)
	stored.RejectionReason = q.RejectionReason
	stored.ReviewerNotes = q.ReviewerNotes
	stored.UpdatedAt = q.UpdatedAt

	return nil
}

func reviewAction(target domain.Status) string {
	if target == domain.StatusRejected {
		return "reject"
	}
	return "approve"
}

func (r *QuotationRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.quotations[id]; !ok {
		return domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	delete(r.store.quotations, id)
	r.store.order = slices.DeleteFunc(r.store.order, func(v string) bool { return v == id })

	return nil
}

func (r *QuotationRepository) FindDuplicateCandidates(
	_ context.Context,
	authorID, sourceID string,
	statuses []domain.Status,
	excludeID string,
	limit int,
) ([]*domain.Quotation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Quotation, 0)
	for _, id := range r.store.order {
		if limit > 0 && len(out) >= limit {
			break
		}

		q := r.store.quotations[id].q
		if q.ID == excludeID || q.Author.ID != authorID || q.Source.ID != sourceID {
			continue
		}
		if !slices.Contains(statuses, q.Status) {
			continue
		}
		out = append(out, cloneQuotation(q))
	}

	return out, nil
}

func (r *QuotationRepository) TagCounts(_ context.Context, limit int) ([]domain.TagCount, error) {
	counts := make(map[string]int)

	r.store.mu.RLock()
	for _, rec := range r.store.quotations {
		if rec.q.Status != domain.StatusApproved {
			continue
		}
		for _, t := range rec.q.Tags {
			counts[t]++
		}
	}
	r.store.mu.RUnlock()

	out := make([]domain.TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, domain.TagCount{Tag: tag, Count: n})
	}

	slices.SortFunc(out, func(a, b domain.TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
