package dto

import (
	"github.com/jsamuelsen/quotations-service/internal/domain"
)

// PageQuery represents pagination parameters from the request. Out-of-range values are
// clamped rather than rejected.
type PageQuery struct {
	// Page is 1-based, default 1.
	Page int `form:"page"`

	// PageSize is the number of items per page (1-100, default 20).
	PageSize int `form:"pageSize"`
}

// ToDomain returns the normalized page request.
func (p PageQuery) ToDomain() domain.PageRequest {
	return domain.PageRequest{Page: p.Page, PageSize: p.PageSize}.Normalize()
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// PageResponse is a generic paginated response structure.
type PageResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPageResponse converts a domain page item by item.
func NewPageResponse[S, T any](page *domain.Page[S], convert func(S) T) *PageResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}

	return &PageResponse[T]{
		Items: items,
		Pagination: Pagination{
			Page:        page.Page,
			PageSize:    page.PageSize,
			TotalCount:  page.TotalCount,
			TotalPages:  page.TotalPages,
			HasNext:     page.HasNext,
			HasPrevious: page.HasPrevious,
		},
	}
}

// ListResponse wraps an unpaginated collection.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// NewListResponse converts items one by one.
func NewListResponse[S, T any](items []S, convert func(S) T) *ListResponse[T] {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}

	return &ListResponse[T]{Items: out}
}
