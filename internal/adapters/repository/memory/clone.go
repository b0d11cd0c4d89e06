package memory

import (
	"slices"
	"time"

	"github.com/jsamuelsen/quotations-service/internal/domain"
)

func cloneQuotation(q *domain.Quotation) *domain.Quotation {
	c := *q
	c.Tags = slices.Clone(q.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	c.SubmittedBy = cloneUser(q.SubmittedBy)
	c.ReviewedBy = cloneUser(q.ReviewedBy)
	c.ReviewedAt = cloneTime(q.ReviewedAt)

	return &c
}

func cloneUser(u *domain.UserRef) *domain.UserRef {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneAuthor(a *domain.Author) *domain.Author {
	c := *a
	return &c
}

func cloneSource(s *domain.Source) *domain.Source {
	c := *s
	if s.Year != nil {
		y := *s.Year
		c.Year = &y
	}
	return &c
}
