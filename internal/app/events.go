package app

import (
	"time"

	"github.com/jsamuelsen/quotations-service/internal/domain"
)

// Event types published by the review workflow.
const (
	EventQuotationSubmitted = "quotation.submitted"
	EventQuotationApproved  = "quotation.approved"
	EventQuotationRejected  = "quotation.rejected"
)

// QuotationEvent announces a committed change to a quotation.
type QuotationEvent struct {
	Type      string
	Quotation *domain.Quotation
	At        time.Time
}

// QuotationEventPayload is the serialized body of a QuotationEvent.
type QuotationEventPayload struct {
	Type            string     `json:"type"`
	QuotationID     string     `json:"quotationId"`
	Status          string     `json:"status"`
	AuthorID        string     `json:"authorId"`
	AuthorName      string     `json:"authorName"`
	SourceID        string     `json:"sourceId"`
	SourceTitle     string     `json:"sourceTitle"`
	Tags            []string   `json:"tags"`
	SubmitterID     string     `json:"submitterId,omitempty"`
	ReviewerID      string     `json:"reviewerId,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	OccurredAt      time.Time  `json:"occurredAt"`
}

func newQuotationEvent(typ string, q *domain.Quotation, at time.Time) QuotationEvent {
	return QuotationEvent{Type: typ, Quotation: q, At: at}
}

// EventType implements ports.Event.
func (e QuotationEvent) EventType() string { return e.Type }

// Payload implements ports.Event.
func (e QuotationEvent) Payload() any {
	q := e.Quotation
	p := QuotationEventPayload{
		Type:            e.Type,
		QuotationID:     q.ID,
		Status:          q.Status.String(),
		AuthorID:        q.Author.ID,
		AuthorName:      q.Author.Name,
		SourceID:        q.Source.ID,
		SourceTitle:     q.Source.Title,
		Tags:            q.Tags,
		ReviewedAt:      q.ReviewedAt,
		RejectionReason: q.RejectionReason,
		OccurredAt:      e.At,
	}

	if q.SubmittedBy != nil {
		p.SubmitterID = q.SubmittedBy.ID
	}
	if q.ReviewedBy != nil {
		p.ReviewerID = q.ReviewedBy.ID
	}

	return p
}
