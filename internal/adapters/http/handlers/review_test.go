package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http/dto"
)

const lennon = `{
	"text": "Life is what happens when you're busy making other plans.",
	"authorName": "John Lennon",
	"authorLifespan": "1940-1980",
	"sourceTitle": "Beautiful Boy",
	"sourceType": "other",
	"sourceYear": 1980,
	"tags": ["life", " ", "music"]
}`

func (f *apiFixture) submit(t *testing.T, body string, who caller) dto.QuotationResponse {
	t.Helper()

	w := f.do(http.MethodPost, "/api/v1/submissions", body, who)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decode[dto.QuotationResponse](t, w)
}

func TestSubmissionHandler_Submit(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := newAPI(t)

		w := f.do(http.MethodPost, "/api/v1/submissions", lennon, anonymous)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		q := decode[dto.QuotationResponse](t, w)
		assert.Equal(t, "/api/v1/quotations/"+q.ID, w.Header().Get("Location"))
		assert.Equal(t, "pending", q.Status)
		assert.Equal(t, "John Lennon", q.Author.Name)
		assert.Equal(t, "other", q.Source.Type)
		assert.Equal(t, []string{"life", "music"}, q.Tags)
		assert.Nil(t, q.SubmittedBy)
		assert.Nil(t, q.ReviewedBy)
	})

	t.Run("authenticated", func(t *testing.T) {
		f := newAPI(t)

		q := f.submit(t, lennon, alice)
		require.NotNil(t, q.SubmittedBy)
		assert.Equal(t, dto.UserResponse{ID: "u-alice", Username: "alice"}, *q.SubmittedBy)
	})

	t.Run("field validation", func(t *testing.T) {
		f := newAPI(t)

		w := f.do(http.MethodPost, "/api/v1/submissions",
			`{"text":"  ","authorName":"A","sourceTitle":"B","sourceType":"podcast"}`, anonymous)

		resp := assertError(t, w, http.StatusBadRequest, dto.ErrorCodeValidation)
		assert.Equal(t, "is required", resp.Error.Details["text"])
		assert.Contains(t, resp.Error.Details, "sourceType")
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newAPI(t)

		w := f.do(http.MethodPost, "/api/v1/submissions", `{"text":`, anonymous)
		resp := assertError(t, w, http.StatusBadRequest, dto.ErrorCodeBadRequest)
		assert.Contains(t, resp.Error.Message, "malformed request")
	})
}

func TestSubmissionHandler_Mine(t *testing.T) {
	f := newAPI(t)
	f.submit(t, lennon, alice)
	f.submit(t, lennon, anonymous)

	w := f.do(http.MethodGet, "/api/v1/submissions/my", "", anonymous)
	assertError(t, w, http.StatusUnauthorized, dto.ErrorCodeUnauthorized)

	w = f.do(http.MethodGet, "/api/v1/submissions/my", "", alice)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.PageResponse[dto.QuotationResponse]](t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "u-alice", resp.Items[0].SubmittedBy.ID)
	assert.Equal(t, 1, resp.Pagination.TotalCount)
}

func TestReviewHandler_Authorization(t *testing.T) {
	f := newAPI(t)

	tests := []struct {
		name       string
		who        caller
		wantStatus int
	}{
		{"anonymous", anonymous, http.StatusUnauthorized},
		{"no reviewer role", alice, http.StatusForbidden},
		{"reviewer", moderator, http.StatusOK},
		{"admin", caller{id: "u-root", roles: "admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(http.MethodGet, "/api/v1/review/pending", "", tt.who)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestReviewHandler_Pending(t *testing.T) {
	f := newAPI(t)
	first := f.submit(t, lennon, alice)
	f.submit(t, lennon, anonymous)

	w := f.do(http.MethodGet, "/api/v1/review/pending", "", moderator)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.PageResponse[dto.QuotationResponse]](t, w)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, first.ID, resp.Items[0].ID, "oldest submission first")
}

func TestReviewHandler_Approve(t *testing.T) {
	f := newAPI(t)
	q := f.submit(t, lennon, alice)

	w := f.do(http.MethodPost, "/api/v1/review/"+q.ID+"/approve", "", moderator)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	approved := decode[dto.QuotationResponse](t, w)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, "u-mod", approved.ReviewedBy.ID)
	assert.NotNil(t, approved.ReviewedAt)

	w = f.do(http.MethodGet, "/api/v1/quotations/search?q=busy%20plans", "", anonymous)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.PageResponse[dto.QuotationResponse]](t, w).Items, 1)

	w = f.do(http.MethodPost, "/api/v1/review/"+q.ID+"/approve", `{"reviewerNotes":"again"}`, moderator)
	assertError(t, w, http.StatusConflict, dto.ErrorCodeInvalidState)

	w = f.do(http.MethodPost, "/api/v1/review/missing/approve", "", moderator)
	assertError(t, w, http.StatusNotFound, dto.ErrorCodeNotFound)
}

func TestReviewHandler_Reject(t *testing.T) {
	f := newAPI(t)
	q := f.submit(t, lennon, alice)

	w := f.do(http.MethodPost, "/api/v1/review/"+q.ID+"/reject", `{"rejectionReason":"too short"}`, moderator)
	resp := assertError(t, w, http.StatusBadRequest, dto.ErrorCodeValidation)
	assert.Equal(t, "must be at least 10 characters", resp.Error.Details["rejectionReason"])

	w = f.do(http.MethodPost, "/api/v1/review/"+q.ID+"/reject", `{}`, moderator)
	resp = assertError(t, w, http.StatusBadRequest, dto.ErrorCodeValidation)
	assert.Equal(t, "this field is required", resp.Error.Details["rejectionReason"])

	w = f.do(http.MethodPost, "/api/v1/review/"+q.ID+"/reject",
		`{"rejectionReason":"Misattributed to John Lennon.","reviewerNotes":"Allen Saunders, 1957"}`, moderator)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	rejected := decode[dto.QuotationResponse](t, w)
	assert.Equal(t, "rejected", rejected.Status)
	assert.Equal(t, "Misattributed to John Lennon.", rejected.RejectionReason)
	assert.Equal(t, "Allen Saunders, 1957", rejected.ReviewerNotes)

	w = f.do(http.MethodPost, "/api/v1/review/"+q.ID+"/approve", "", moderator)
	assertError(t, w, http.StatusConflict, dto.ErrorCodeInvalidState)
}

func TestReviewHandler_Duplicates(t *testing.T) {
	f := newAPI(t)
	dup := f.submit(t, `{
		"text": "Be the change you wish to see in the world.",
		"authorName": "Mahatma Gandhi",
		"sourceTitle": "The Story of My Experiments with Truth",
		"sourceType": "book"
	}`, alice)
	unique := f.submit(t, lennon, alice)

	w := f.do(http.MethodGet, "/api/v1/review/"+dup.ID+"/duplicates", "", moderator)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListResponse[dto.QuotationResponse]](t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "approved", resp.Items[0].Status)
	assert.Equal(t, dup.Text, resp.Items[0].Text)

	w = f.do(http.MethodGet, "/api/v1/review/"+unique.ID+"/duplicates", "", moderator)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}
