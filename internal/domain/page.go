package domain

// Pagination bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest selects a 1-based page.
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize clamps the request into the supported range.
func (r PageRequest) Normalize() PageRequest {
	if r.Page < 1 {
		r.Page = 1
	}

	switch {
	case r.PageSize < 1:
		r.PageSize = DefaultPageSize
	case r.PageSize > MaxPageSize:
		r.PageSize = MaxPageSize
	}

	return r
}

// Offset returns the number of items to skip.
func (r PageRequest) Offset() int {
	r = r.Normalize()
	return (r.Page - 1) * r.PageSize
}

// Page is one page of a larger result set.
type Page[T any] struct {
	Items       []T
	Page        int
	PageSize    int
	TotalCount  int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// NewPage assembles a page from its items and the total number of matches.
func NewPage[T any](items []T, req PageRequest, total int) *Page[T] {
	req = req.Normalize()
	if items == nil {
		items = []T{}
	}

	totalPages := (total + req.PageSize - 1) / req.PageSize

	return &Page[T]{
		Items:       items,
		Page:        req.Page,
		PageSize:    req.PageSize,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNext:     req.Page < totalPages,
		HasPrevious: req.Page > 1,
	}
}

// QuotationFilter narrows quotation listings. A nil Status means approved only, unless
// SubmitterID is set, in which case every status of that submitter is returned.
type QuotationFilter struct {
	Status      *Status
	AuthorID    string
	SourceType  *SourceType
	Tags        []string
	SubmitterID string
}

// EffectiveStatus resolves the status constraint, nil meaning no constraint.
func (f QuotationFilter) EffectiveStatus() *Status {
	if f.Status != nil {
		return f.Status
	}

	if f.SubmitterID != "" {
		return nil
	}

	approved := StatusApproved

	return &approved
}

// OldestFirst reports whether results are ordered for the review queue.
func (f QuotationFilter) OldestFirst() bool {
	s := f.EffectiveStatus()
	return s != nil && *s == StatusPending && f.SubmitterID == ""
}
