package postgres

import (
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/jsamuelsen/quotations-service/internal/domain"
)

// conditions accumulates a WHERE clause with numbered placeholders.
type conditions struct {
	clauses []string
	args    []any
}

// arg registers v and returns its placeholder.
func (c *conditions) arg(v any) string {
	c.args = append(c.args, v)
	return "$" + strconv.Itoa(len(c.args))
}

func (c *conditions) where(clause string) {
	c.clauses = append(c.clauses, clause)
}

func (c *conditions) String() string {
	if len(c.clauses) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// quotationFilter translates a listing filter. Tags are matched case-insensitively and all
// of them must be present.
func quotationFilter(f domain.QuotationFilter) *conditions {
	c := &conditions{}

	if status := f.EffectiveStatus(); status != nil {
		c.where("status = " + c.arg(string(*status)))
	}
	if f.AuthorID != "" {
		c.where("author_id = " + c.arg(f.AuthorID))
	}
	if f.SourceType != nil {
		c.where("source_type = " + c.arg(string(*f.SourceType)))
	}
	if f.SubmitterID != "" {
		c.where("submitted_by_id = " + c.arg(f.SubmitterID))
	}
	if len(f.Tags) > 0 {
		lowered := make([]string, len(f.Tags))
		for i, t := range f.Tags {
			lowered[i] = strings.ToLower(t)
		}
		c.where("ARRAY(SELECT lower(t) FROM unnest(tags) AS t) @> " + c.arg(pq.StringArray(lowered)) + "::text[]")
	}

	return c
}

func listOrder(f domain.QuotationFilter) string {
	if f.OldestFirst() {
		return " ORDER BY submitted_at ASC, id ASC"
	}

	return " ORDER BY submitted_at DESC, id DESC"
}
