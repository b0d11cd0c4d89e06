package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quotations-service/internal/domain"
)

const quotationColumns = `id, text, author_id, author_name, source_id, source_title, source_type, tags, status,
	submitted_by_id, submitted_by_name, submitted_at, reviewed_by_id, reviewed_by_name, reviewed_at,
	rejection_reason, reviewer_notes, created_at, updated_at`

// QuotationRepository implements ports.QuotationRepository.
type QuotationRepository struct {
	db *sql.DB
}

// NewQuotationRepository returns a repository backed by db.
func NewQuotationRepository(db *sql.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuotation(row rowScanner) (*domain.Quotation, error) {
	var (
		q                              domain.Quotation
		tags                           pq.StringArray
		sourceType, status             string
		submittedByID, submittedByName sql.NullString
		reviewedByID, reviewedByName   sql.NullString
		reviewedAt                     sql.NullTime
		rejectionReason, reviewerNotes sql.NullString
	)

	err := row.Scan(
		&q.ID, &q.Text, &q.Author.ID, &q.Author.Name, &q.Source.ID, &q.Source.Title, &sourceType,
		&tags, &status, &submittedByID, &submittedByName, &q.SubmittedAt,
		&reviewedByID, &reviewedByName, &reviewedAt, &rejectionReason, &reviewerNotes,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	q.Source.Type = domain.SourceType(sourceType)
	q.Status = domain.Status(status)
	q.Tags = []string(tags)
	if q.Tags == nil {
		q.Tags = []string{}
	}
	if submittedByID.Valid {
		q.SubmittedBy = &domain.UserRef{ID: submittedByID.String, Username: submittedByName.String}
	}
	if reviewedByID.Valid {
		q.ReviewedBy = &domain.UserRef{ID: reviewedByID.String, Username: reviewedByName.String}
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		q.ReviewedAt = &t
	}
	q.RejectionReason = rejectionReason.String
	q.ReviewerNotes = reviewerNotes.String

	return &q, nil
}

func scanQuotations(rows *sql.Rows) ([]*domain.Quotation, error) {
	defer rows.Close()

	out := make([]*domain.Quotation, 0)
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quotation: %w", err)
		}
		out = append(out, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotations: %w", err)
	}

	return out, nil
}

// pageQuery runs the count and the page query concurrently.
func (r *QuotationRepository) pageQuery(
	ctx context.Context,
	countSQL, pageSQL string,
	args []any,
	page domain.PageRequest,
) (*domain.Page[*domain.Quotation], error) {
	var (
		total int
		items []*domain.Quotation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.db.QueryRowContext(gctx, countSQL, args...).Scan(&total); err != nil {
			return fmt.Errorf("counting quotations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		pageArgs := append(append([]any{}, args...), page.PageSize, page.Offset())
		rows, err := r.db.QueryContext(gctx, pageSQL, pageArgs...)
		if err != nil {
			return fmt.Errorf("querying quotations: %w", err)
		}
		items, err = scanQuotations(rows)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewPage(items, page, total), nil
}

func (r *QuotationRepository) List(ctx context.Context, filter domain.QuotationFilter, page domain.PageRequest) (*domain.Page[*domain.Quotation], error) {
	page = page.Normalize()
	where := quotationFilter(filter)
	n := len(where.args)

	countSQL := "SELECT COUNT(*) FROM quotations" + where.String()
	pageSQL := fmt.Sprintf("SELECT %s FROM quotations%s%s LIMIT $%d OFFSET $%d",
		quotationColumns, where.String(), listOrder(filter), n+1, n+2)

	return r.pageQuery(ctx, countSQL, pageSQL, where.args, page)
}

func (r *QuotationRepository) Get(ctx context.Context, id string) (*domain.Quotation, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+quotationColumns+" FROM quotations WHERE id = $1", id)

	q, err := scanQuotation(row)
	if err != nil {
		return nil, translate(err, "getting quotation", domain.EntityQuotation, id)
	}

	return q, nil
}

func (r *QuotationRepository) Search(ctx context.Context, query string, page domain.PageRequest) (*domain.Page[*domain.Quotation], error) {
	page = page.Normalize()

	const match = ` FROM quotations, plainto_tsquery('english', $1) AS query
		WHERE status = 'approved' AND search_vector @@ query`

	countSQL := "SELECT COUNT(*)" + match
	pageSQL := "SELECT " + quotationColumns + match +
		" ORDER BY ts_rank(search_vector, query) DESC, submitted_at DESC LIMIT $2 OFFSET $3"

	return r.pageQuery(ctx, countSQL, pageSQL, []any{query}, page)
}

func (r *QuotationRepository) Create(ctx context.Context, q *domain.Quotation) error {
	var submittedByID, submittedByName sql.NullString
	if q.SubmittedBy != nil {
		submittedByID = nullString(q.SubmittedBy.ID)
		submittedByName = nullString(q.SubmittedBy.Username)
	}

	var reviewedByID, reviewedByName sql.NullString
	if q.ReviewedBy != nil {
		reviewedByID = nullString(q.ReviewedBy.ID)
		reviewedByName = nullString(q.ReviewedBy.Username)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quotations (`+quotationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		q.ID, q.Text, q.Author.ID, q.Author.Name, q.Source.ID, q.Source.Title, string(q.Source.Type),
		pq.StringArray(q.Tags), string(q.Status), submittedByID, submittedByName, q.SubmittedAt,
		reviewedByID, reviewedByName, q.ReviewedAt, nullString(q.RejectionReason), nullString(q.ReviewerNotes),
		q.CreatedAt, q.UpdatedAt,
	)

	return translate(err, "inserting quotation", domain.EntityQuotation, q.ID)
}

func (r *QuotationRepository) Update(ctx context.Context, q *domain.Quotation) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE quotations SET
			text = $2, author_id = $3, author_name = $4, source_id = $5, source_title = $6,
			source_type = $7, tags = $8, updated_at = $9
		WHERE id = $1`,
		q.ID, q.Text, q.Author.ID, q.Author.Name, q.Source.ID, q.Source.Title,
		string(q.Source.Type), pq.StringArray(q.Tags), q.UpdatedAt,
	)
	if err != nil {
		return translate(err, "updating quotation", domain.EntityQuotation, q.ID)
	}

	return requireRow(res, domain.EntityQuotation, q.ID)
}

// CompareAndSetReview writes the review outcome only while the row still has the expected
// status, so two concurrent reviewers cannot both succeed.
func (r *QuotationRepository) CompareAndSetReview(ctx context.Context, q *domain.Quotation, expected domain.Status) error {
	var reviewedByID, reviewedByName sql.NullString
	if q.ReviewedBy != nil {
		reviewedByID = nullString(q.ReviewedBy.ID)
		reviewedByName = nullString(q.ReviewedBy.Username)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE quotations SET
			status = $2, reviewed_by_id = $3, reviewed_by_name = $4, reviewed_at = $5,
			rejection_reason = $6, reviewer_notes = $7, updated_at = $8
		WHERE id = $1 AND status = $9`,
		q.ID, string(q.Status), reviewedByID, reviewedByName, q.ReviewedAt,
		nullString(q.RejectionReason), nullString(q.ReviewerNotes), q.UpdatedAt, string(expected),
	)
	if err != nil {
		return translate(err, "reviewing quotation", domain.EntityQuotation, q.ID)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reviewing quotation: %w", err)
	}
	if n == 1 {
		return nil
	}

	var current string
	err = r.db.QueryRowContext(ctx, "SELECT status FROM quotations WHERE id = $1", q.ID).Scan(&current)
	if err != nil {
		return translate(err, "reading quotation status", domain.EntityQuotation, q.ID)
	}

	action := "approve"
	if q.Status == domain.StatusRejected {
		action = "reject"
	}

	return domain.NewInvalidStateError(domain.EntityQuotation, q.ID, action, domain.Status(current))
}

func (r *QuotationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM quotations WHERE id = $1", id)
	if err != nil {
		return translate(err, "deleting quotation", domain.EntityQuotation, id)
	}

	return requireRow(res, domain.EntityQuotation, id)
}

func (r *QuotationRepository) FindDuplicateCandidates(
	ctx context.Context,
	authorID, sourceID string,
	statuses []domain.Status,
	excludeID string,
	limit int,
) ([]*domain.Quotation, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+quotationColumns+` FROM quotations
		WHERE author_id = $1 AND source_id = $2 AND status = ANY($3::text[]) AND id <> $4
		ORDER BY created_at ASC, id ASC
		LIMIT $5`,
		authorID, sourceID, pq.StringArray(names), excludeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying duplicate candidates: %w", err)
	}

	return scanQuotations(rows)
}

func (r *QuotationRepository) TagCounts(ctx context.Context, limit int) ([]domain.TagCount, error) {
	query := `
		SELECT tag, COUNT(*) AS uses
		FROM quotations, unnest(tags) AS tag
		WHERE status = 'approved'
		GROUP BY tag
		ORDER BY uses DESC, tag ASC`

	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("counting tags: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TagCount, 0)
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, fmt.Errorf("scanning tag count: %w", err)
		}
		out = append(out, tc)
	}

	return out, rows.Err()
}

func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError(entity, id)
	}

	return nil
}
