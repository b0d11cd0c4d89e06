package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Status is the review lifecycle state of a quotation.
type Status string

// Review statuses. Pending is the only non-terminal status.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus parses a status case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", NewValidationError("status", "must be one of pending, approved, rejected")
	}
}

func (s Status) String() string { return string(s) }

// Terminal reports whether no further review transition is allowed.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// SourceType classifies where a quotation comes from.
type SourceType string

// Source types.
const (
	SourceTypeBook      SourceType = "book"
	SourceTypeMovie     SourceType = "movie"
	SourceTypeSpeech    SourceType = "speech"
	SourceTypeInterview SourceType = "interview"
	SourceTypeOther     SourceType = "other"
)

// SourceTypes lists every valid source type.
func SourceTypes() []SourceType {
	return []SourceType{SourceTypeBook, SourceTypeMovie, SourceTypeSpeech, SourceTypeInterview, SourceTypeOther}
}

// ParseSourceType parses a source type case-insensitively.
func ParseSourceType(s string) (SourceType, error) {
	st := SourceType(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range SourceTypes() {
		if st == valid {
			return st, nil
		}
	}

	return "", NewValidationError("sourceType", "must be one of book, movie, speech, interview, other")
}

func (t SourceType) String() string { return string(t) }

// Field limits shared by validation at every boundary.
const (
	MaxTextLength            = 5000
	MaxAuthorNameLength      = 200
	MaxOccupationLength      = 200
	MaxSourceTitleLength     = 300
	MaxAdditionalInfoLength  = 500
	MaxTags                  = 20
	MaxTagLength             = 50
	MinRejectionReasonLength = 10
	MaxRejectionReasonLength = 1000
	MaxReviewerNotesLength   = 1000
	MinSourceYear            = 1000
	MaxSourceYear            = 2100
)

// Fallback usernames for references created without one.
const (
	DefaultSubmitterName = "User"
	DefaultReviewerName  = "Reviewer"
)

// UserRef is a snapshot of a user taken when a quotation is submitted or reviewed.
type UserRef struct {
	ID       string
	Username string
}

// AuthorRef is the author snapshot embedded in a quotation.
type AuthorRef struct {
	ID   string
	Name string
}

// SourceRef is the source snapshot embedded in a quotation.
type SourceRef struct {
	ID    string
	Title string
	Type  SourceType
}

// Quotation is a submitted text with its attribution and review state.
//
// ReviewedBy and ReviewedAt are set together by Approve or Reject and never again.
// RejectionReason is non-empty exactly when Status is StatusRejected.
type Quotation struct {
	ID              string
	Text            string
	Author          AuthorRef
	Source          SourceRef
	Tags            []string
	Status          Status
	SubmittedBy     *UserRef
	SubmittedAt     time.Time
	ReviewedBy      *UserRef
	ReviewedAt      *time.Time
	RejectionReason string
	ReviewerNotes   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewQuotation builds a pending quotation submitted at now.
func NewQuotation(id, text string, author AuthorRef, source SourceRef, tags []string, submitter *UserRef, now time.Time) *Quotation {
	if tags == nil {
		tags = []string{}
	}

	return &Quotation{
		ID:          id,
		Text:        text,
		Author:      author,
		Source:      source,
		Tags:        tags,
		Status:      StatusPending,
		SubmittedBy: submitter,
		SubmittedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Approve moves a pending quotation to approved.
func (q *Quotation) Approve(reviewer UserRef, notes string, now time.Time) error {
	if q.Status != StatusPending {
		return NewInvalidStateError(EntityQuotation, q.ID, "approve", q.Status)
	}

	q.markReviewed(StatusApproved, reviewer, notes, now)

	return nil
}

// Reject moves a pending quotation to rejected. The reason must be 10 to 1000 characters
// after trimming.
func (q *Quotation) Reject(reviewer UserRef, reason, notes string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if err := ValidateRejectionReason(reason); err != nil {
		return err
	}

	if q.Status != StatusPending {
		return NewInvalidStateError(EntityQuotation, q.ID, "reject", q.Status)
	}

	q.markReviewed(StatusRejected, reviewer, notes, now)
	q.RejectionReason = reason

	return nil
}

func (q *Quotation) markReviewed(status Status, reviewer UserRef, notes string, now time.Time) {
	if reviewer.Username == "" {
		reviewer.Username = DefaultReviewerName
	}

	reviewedAt := now
	q.Status = status
	q.ReviewedBy = &reviewer
	q.ReviewedAt = &reviewedAt
	q.ReviewerNotes = strings.TrimSpace(notes)
	q.UpdatedAt = now
}

// ValidateRejectionReason checks the rejection reason bounds.
func ValidateRejectionReason(reason string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(reason))
	if n < MinRejectionReasonLength || n > MaxRejectionReasonLength {
		return NewValidationError("rejectionReason", "must be between 10 and 1000 characters")
	}

	return nil
}

// HasAllTags reports whether the quotation carries every tag in want.
func (q *Quotation) HasAllTags(want []string) bool {
	for _, w := range want {
		found := false
		for _, t := range q.Tags {
			if strings.EqualFold(t, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Author is the canonical author record.
type Author struct {
	ID             string
	Name           string
	Lifespan       string
	Occupation     string
	Biography      string
	QuotationCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Ref returns the snapshot embedded into quotations.
func (a *Author) Ref() AuthorRef { return AuthorRef{ID: a.ID, Name: a.Name} }

// Source is the canonical source record. Title and Type identify it.
type Source struct {
	ID             string
	Title          string
	Type           SourceType
	Year           *int
	AdditionalInfo string
	QuotationCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Ref returns the snapshot embedded into quotations.
func (s *Source) Ref() SourceRef { return SourceRef{ID: s.ID, Title: s.Title, Type: s.Type} }

// TagCount is one entry of the tag cloud.
type TagCount struct {
	Tag   string
	Count int
}

// AuthorProfile is biographical data about an author obtained from an external directory.
type AuthorProfile struct {
	Name        string
	Description string
	Bio         string
	Link        string
}
