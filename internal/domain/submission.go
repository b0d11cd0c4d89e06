package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var lifespanPattern = regexp.MustCompile(`^\d{4}-(\d{4}|present)$`)

// Submission is the input of a new quotation.
type Submission struct {
	Text                 string
	AuthorName           string
	AuthorLifespan       string
	AuthorOccupation     string
	SourceTitle          string
	SourceType           string
	SourceYear           *int
	SourceAdditionalInfo string
	Tags                 []string
	SubmitterID          string
	SubmitterName        string
}

// Normalize trims every free-text field and tag. Blank tags are kept so
// Validate can reject them.
func (s *Submission) Normalize() {
	s.Text = strings.TrimSpace(s.Text)
	s.AuthorName = strings.TrimSpace(s.AuthorName)
	s.AuthorLifespan = strings.TrimSpace(s.AuthorLifespan)
	s.AuthorOccupation = strings.TrimSpace(s.AuthorOccupation)
	s.SourceTitle = strings.TrimSpace(s.SourceTitle)
	s.SourceType = strings.TrimSpace(s.SourceType)
	s.SourceAdditionalInfo = strings.TrimSpace(s.SourceAdditionalInfo)
	s.SubmitterID = strings.TrimSpace(s.SubmitterID)
	s.SubmitterName = strings.TrimSpace(s.SubmitterName)

	tags := make([]string, len(s.Tags))
	for i, t := range s.Tags {
		tags[i] = strings.TrimSpace(t)
	}
	s.Tags = tags
}

// Validate checks every field and reports all problems in one ValidationError.
// Call Normalize first; Validate does not trim.
func (s *Submission) Validate() error {
	fields := map[string]string{}
	var first string

	fail := func(field, msg string) {
		if _, ok := fields[field]; ok {
			return
		}
		if first == "" {
			first = field
		}
		fields[field] = msg
	}

	checkRequired(fail, "text", s.Text, MaxTextLength)
	checkRequired(fail, "authorName", s.AuthorName, MaxAuthorNameLength)
	checkRequired(fail, "sourceTitle", s.SourceTitle, MaxSourceTitleLength)

	if _, err := ParseSourceType(s.SourceType); err != nil {
		fail("sourceType", err.(*ValidationError).Message)
	}

	if s.AuthorLifespan != "" && !lifespanPattern.MatchString(s.AuthorLifespan) {
		fail("authorLifespan", "must look like 1879-1955 or 1950-present")
	}

	if utf8.RuneCountInString(s.AuthorOccupation) > MaxOccupationLength {
		fail("authorOccupation", fmt.Sprintf("must be at most %d characters", MaxOccupationLength))
	}

	if s.SourceYear != nil && (*s.SourceYear < MinSourceYear || *s.SourceYear > MaxSourceYear) {
		fail("sourceYear", fmt.Sprintf("must be between %d and %d", MinSourceYear, MaxSourceYear))
	}

	if utf8.RuneCountInString(s.SourceAdditionalInfo) > MaxAdditionalInfoLength {
		fail("sourceAdditionalInfo", fmt.Sprintf("must be at most %d characters", MaxAdditionalInfoLength))
	}

	if len(s.Tags) > MaxTags {
		fail("tags", fmt.Sprintf("must contain at most %d tags", MaxTags))
	}

	for _, t := range s.Tags {
		if n := utf8.RuneCountInString(t); n < 1 || n > MaxTagLength {
			fail("tags", fmt.Sprintf("each tag must be between 1 and %d characters", MaxTagLength))
			break
		}
	}

	if len(fields) == 0 {
		return nil
	}

	return &ValidationError{Field: first, Message: fields[first], Fields: fields}
}

// Submitter returns the submitter reference, or nil for anonymous submissions.
func (s *Submission) Submitter() *UserRef {
	if s.SubmitterID == "" {
		return nil
	}

	name := s.SubmitterName
	if name == "" {
		name = DefaultSubmitterName
	}

	return &UserRef{ID: s.SubmitterID, Username: name}
}

func checkRequired(fail func(field, msg string), field, value string, maxLen int) {
	if value == "" {
		fail(field, "is required")
		return
	}

	if utf8.RuneCountInString(value) > maxLen {
		fail(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
}
