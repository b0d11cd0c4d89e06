package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen/quotations-service/internal/domain"
)

const (
	authorColumns = "id, name, lifespan, occupation, biography, quotation_count, created_at, updated_at"
	sourceColumns = "id, title, type, year, additional_info, quotation_count, created_at, updated_at"
)

// AuthorRepository implements ports.AuthorRepository.
type AuthorRepository struct {
	db *sql.DB
}

// NewAuthorRepository returns a repository backed by db.
func NewAuthorRepository(db *sql.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

func scanAuthor(row rowScanner) (*domain.Author, error) {
	var (
		a                               domain.Author
		lifespan, occupation, biography sql.NullString
	)

	if err := row.Scan(&a.ID, &a.Name, &lifespan, &occupation, &biography,
		&a.QuotationCount, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}

	a.Lifespan = lifespan.String
	a.Occupation = occupation.String
	a.Biography = biography.String

	return &a, nil
}

func (r *AuthorRepository) FindByName(ctx context.Context, name string) (*domain.Author, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+authorColumns+" FROM authors WHERE lower(name) = lower($1)", name)

	a, err := scanAuthor(row)
	if err != nil {
		return nil, translate(err, "finding author", domain.EntityAuthor, name)
	}

	return a, nil
}

func (r *AuthorRepository) Get(ctx context.Context, id string) (*domain.Author, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+authorColumns+" FROM authors WHERE id = $1", id)

	a, err := scanAuthor(row)
	if err != nil {
		return nil, translate(err, "getting author", domain.EntityAuthor, id)
	}

	return a, nil
}

func (r *AuthorRepository) Create(ctx context.Context, a *domain.Author) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO authors ("+authorColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		a.ID, a.Name, nullString(a.Lifespan), nullString(a.Occupation), nullString(a.Biography),
		a.QuotationCount, a.CreatedAt, a.UpdatedAt,
	)

	return translate(err, "inserting author", domain.EntityAuthor, a.ID)
}

func (r *AuthorRepository) List(ctx context.Context, limit int) ([]*domain.Author, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+authorColumns+" FROM authors ORDER BY lower(name) ASC LIMIT $1", limitOrAll(limit))
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning author: %w", err)
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AuthorRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM authors").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting authors: %w", err)
	}

	return n, nil
}

func (r *AuthorRepository) IncrementQuotationCount(ctx context.Context, id string, delta int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE authors SET quotation_count = quotation_count + $2, updated_at = NOW() WHERE id = $1", id, delta)
	if err != nil {
		return translate(err, "incrementing author count", domain.EntityAuthor, id)
	}

	return requireRow(res, domain.EntityAuthor, id)
}

// SourceRepository implements ports.SourceRepository.
type SourceRepository struct {
	db *sql.DB
}

// NewSourceRepository returns a repository backed by db.
func NewSourceRepository(db *sql.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

func scanSource(row rowScanner) (*domain.Source, error) {
	var (
		s              domain.Source
		typ            string
		year           sql.NullInt64
		additionalInfo sql.NullString
	)

	if err := row.Scan(&s.ID, &s.Title, &typ, &year, &additionalInfo,
		&s.QuotationCount, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}

	s.Type = domain.SourceType(typ)
	s.AdditionalInfo = additionalInfo.String
	if year.Valid {
		y := int(year.Int64)
		s.Year = &y
	}

	return &s, nil
}

func (r *SourceRepository) FindByTitleAndType(ctx context.Context, title string, typ domain.SourceType) (*domain.Source, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+sourceColumns+" FROM sources WHERE lower(title) = lower($1) AND type = $2", title, string(typ))

	s, err := scanSource(row)
	if err != nil {
		return nil, translate(err, "finding source", domain.EntitySource, title)
	}

	return s, nil
}

func (r *SourceRepository) Get(ctx context.Context, id string) (*domain.Source, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+sourceColumns+" FROM sources WHERE id = $1", id)

	s, err := scanSource(row)
	if err != nil {
		return nil, translate(err, "getting source", domain.EntitySource, id)
	}

	return s, nil
}

func (r *SourceRepository) Create(ctx context.Context, s *domain.Source) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sources ("+sourceColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		s.ID, s.Title, string(s.Type), nullInt(s.Year), nullString(s.AdditionalInfo),
		s.QuotationCount, s.CreatedAt, s.UpdatedAt,
	)

	return translate(err, "inserting source", domain.EntitySource, s.ID)
}

func (r *SourceRepository) List(ctx context.Context, typ *domain.SourceType, limit int) ([]*domain.Source, error) {
	where := &conditions{}
	if typ != nil {
		where.where("type = " + where.arg(string(*typ)))
	}
	limitArg := where.arg(limitOrAll(limit))

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+sourceColumns+" FROM sources"+where.String()+" ORDER BY lower(title) ASC LIMIT "+limitArg,
		where.args...)
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Source, 0)
	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *SourceRepository) IncrementQuotationCount(ctx context.Context, id string, delta int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE sources SET quotation_count = quotation_count + $2, updated_at = NOW() WHERE id = $1", id, delta)
	if err != nil {
		return translate(err, "incrementing source count", domain.EntitySource, id)
	}

	return requireRow(res, domain.EntitySource, id)
}

// limitOrAll maps a non-positive limit to NULL, which PostgreSQL reads as LIMIT ALL.
func limitOrAll(limit int) sql.NullInt64 {
	if limit <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(limit), Valid: true}
}
