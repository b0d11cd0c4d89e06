package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen/quotations-service/internal/app"
	"github.com/jsamuelsen/quotations-service/internal/domain"
)

// UserResponse is a submitter or reviewer snapshot.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthorRefResponse is the author snapshot embedded in a quotation.
type AuthorRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SourceRefResponse is the source snapshot embedded in a quotation.
type SourceRefResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// QuotationResponse is the HTTP representation of a quotation.
type QuotationResponse struct {
	ID              string            `json:"id"`
	Text            string            `json:"text"`
	Author          AuthorRefResponse `json:"author"`
	Source          SourceRefResponse `json:"source"`
	Tags            []string          `json:"tags"`
	Status          string            `json:"status"`
	SubmittedBy     *UserResponse     `json:"submittedBy,omitempty"`
	SubmittedAt     time.Time         `json:"submittedAt"`
	ReviewedBy      *UserResponse     `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewedAt,omitempty"`
	RejectionReason string            `json:"rejectionReason,omitempty"`
	ReviewerNotes   string            `json:"reviewerNotes,omitempty"`
}

// NewQuotationResponse converts a domain quotation.
func NewQuotationResponse(q *domain.Quotation) QuotationResponse {
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}

	return QuotationResponse{
		ID:              q.ID,
		Text:            q.Text,
		Author:          AuthorRefResponse{ID: q.Author.ID, Name: q.Author.Name},
		Source:          SourceRefResponse{ID: q.Source.ID, Title: q.Source.Title, Type: q.Source.Type.String()},
		Tags:            tags,
		Status:          q.Status.String(),
		SubmittedBy:     userResponse(q.SubmittedBy),
		SubmittedAt:     q.SubmittedAt,
		ReviewedBy:      userResponse(q.ReviewedBy),
		ReviewedAt:      q.ReviewedAt,
		RejectionReason: q.RejectionReason,
		ReviewerNotes:   q.ReviewerNotes,
	}
}

func userResponse(u *domain.UserRef) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{ID: u.ID, Username: u.Username}
}

// ListQuotationsQuery holds the browsing filters. Unknown status and source type values
// are ignored rather than rejected.
type ListQuotationsQuery struct {
	PageQuery
	Status     string `form:"status"`
	AuthorID   string `form:"authorId"`
	SourceType string `form:"sourceType"`
	Tags       string `form:"tags"`
}

// Filter builds the domain filter.
func (q ListQuotationsQuery) Filter() domain.QuotationFilter {
	filter := domain.QuotationFilter{
		AuthorID: strings.TrimSpace(q.AuthorID),
		Tags:     SplitTags(q.Tags),
	}

	if q.Status != "" {
		if st, err := domain.ParseStatus(q.Status); err == nil {
			filter.Status = &st
		}
	}

	if q.SourceType != "" {
		if typ, err := domain.ParseSourceType(q.SourceType); err == nil {
			filter.SourceType = &typ
		}
	}

	return filter
}

// SplitTags splits a comma-separated tag list, dropping blanks.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}

	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}

// SearchQuotationsQuery is the full-text search request.
type SearchQuotationsQuery struct {
	PageQuery
	Q string `form:"q" validate:"notblank"`
}

// SubmitQuotationRequest is the body of POST /submissions. Field rules are enforced by
// the review service so every entry point shares them.
type SubmitQuotationRequest struct {
	Text                 string   `json:"text"`
	AuthorName           string   `json:"authorName"`
	AuthorLifespan       string   `json:"authorLifespan"`
	AuthorOccupation     string   `json:"authorOccupation"`
	SourceTitle          string   `json:"sourceTitle"`
	SourceType           string   `json:"sourceType"`
	SourceYear           *int     `json:"sourceYear"`
	SourceAdditionalInfo string   `json:"sourceAdditionalInfo"`
	Tags                 []string `json:"tags"`
}

// ToSubmission attaches the caller's identity; claims-less callers submit anonymously.
func (r *SubmitQuotationRequest) ToSubmission(submitterID, submitterName string) domain.Submission {
	return domain.Submission{
		Text:                 r.Text,
		AuthorName:           r.AuthorName,
		AuthorLifespan:       r.AuthorLifespan,
		AuthorOccupation:     r.AuthorOccupation,
		SourceTitle:          r.SourceTitle,
		SourceType:           r.SourceType,
		SourceYear:           r.SourceYear,
		SourceAdditionalInfo: r.SourceAdditionalInfo,
		Tags:                 r.Tags,
		SubmitterID:          submitterID,
		SubmitterName:        submitterName,
	}
}

// ApproveQuotationRequest is the body of POST /review/:id/approve.
type ApproveQuotationRequest struct {
	ReviewerNotes string `json:"reviewerNotes" validate:"max=1000"`
}

// RejectQuotationRequest is the body of POST /review/:id/reject.
type RejectQuotationRequest struct {
	RejectionReason string `json:"rejectionReason" validate:"required,notblank,min=10,max=1000"`
	ReviewerNotes   string `json:"reviewerNotes"   validate:"max=1000"`
}

// AuthorResponse is the HTTP representation of an author.
type AuthorResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Lifespan       string           `json:"lifespan,omitempty"`
	Occupation     string           `json:"occupation,omitempty"`
	Biography      string           `json:"biography,omitempty"`
	QuotationCount int              `json:"quotationCount"`
	Profile        *ProfileResponse `json:"profile,omitempty"`
}

// ProfileResponse is the author directory enrichment.
type ProfileResponse struct {
	Description string `json:"description,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Link        string `json:"link,omitempty"`
}

// NewAuthorResponse converts a domain author.
func NewAuthorResponse(a *domain.Author) AuthorResponse {
	return AuthorResponse{
		ID:             a.ID,
		Name:           a.Name,
		Lifespan:       a.Lifespan,
		Occupation:     a.Occupation,
		Biography:      a.Biography,
		QuotationCount: a.QuotationCount,
	}
}

// NewAuthorDetailsResponse converts an author with its optional directory profile.
func NewAuthorDetailsResponse(d *app.AuthorDetails) AuthorResponse {
	resp := NewAuthorResponse(d.Author)
	if p := d.Profile; p != nil {
		resp.Profile = &ProfileResponse{Description: p.Description, Bio: p.Bio, Link: p.Link}
	}

	return resp
}

// SourceResponse is the HTTP representation of a source.
type SourceResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Type           string `json:"type"`
	Year           *int   `json:"year,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
	QuotationCount int    `json:"quotationCount"`
}

// NewSourceResponse converts a domain source.
func NewSourceResponse(s *domain.Source) SourceResponse {
	return SourceResponse{
		ID:             s.ID,
		Title:          s.Title,
		Type:           s.Type.String(),
		Year:           s.Year,
		AdditionalInfo: s.AdditionalInfo,
		QuotationCount: s.QuotationCount,
	}
}

// TagResponse is one tag cloud entry.
type TagResponse struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// NewTagResponse converts a tag count.
func NewTagResponse(t domain.TagCount) TagResponse {
	return TagResponse{Tag: t.Tag, Count: t.Count}
}

// LimitQuery is the catalogue listing limit. Zero means the default.
type LimitQuery struct {
	Limit int `form:"limit" validate:"gte=0"`
}

// ListSourcesQuery filters the source catalogue.
type ListSourcesQuery struct {
	LimitQuery
	Type string `form:"type"`
}

// SourceType returns the parsed type filter, nil when absent or unknown.
func (q ListSourcesQuery) SourceType() *domain.SourceType {
	if q.Type == "" {
		return nil
	}

	typ, err := domain.ParseSourceType(q.Type)
	if err != nil {
		return nil
	}

	return &typ
}
