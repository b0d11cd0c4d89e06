package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
	"github.com/jsamuelsen/quotations-service/internal/ports"
)

// SeedEntry is one demo author with a source and an approved quotation.
type SeedEntry struct {
	AuthorName  string
	Lifespan    string
	Occupation  string
	SourceTitle string
	SourceType  domain.SourceType
	SourceYear  int
	Text        string
	Tags        []string
}

// DemoCatalog is the data inserted into an empty database.
var DemoCatalog = []SeedEntry{
	{
		AuthorName:  "Mahatma Gandhi",
		Lifespan:    "1869-1948",
		Occupation:  "Political Leader, Philosopher",
		SourceTitle: "The Story of My Experiments with Truth",
		SourceType:  domain.SourceTypeBook,
		SourceYear:  1927,
		Text:        "Be the change you wish to see in the world.",
		Tags:        []string{"inspiration", "change", "philosophy"},
	},
	{
		AuthorName:  "Albert Einstein",
		Lifespan:    "1879-1955",
		Occupation:  "Theoretical Physicist",
		SourceTitle: "The World As I See It",
		SourceType:  domain.SourceTypeBook,
		SourceYear:  1949,
		Text:        "Imagination is more important than knowledge. Knowledge is limited. Imagination encircles the world.",
		Tags:        []string{"imagination", "knowledge", "science"},
	},
	{
		AuthorName:  "Maya Angelou",
		Lifespan:    "1928-2014",
		Occupation:  "Poet, Author",
		SourceTitle: "I Know Why the Caged Bird Sings",
		SourceType:  domain.SourceTypeBook,
		SourceYear:  1969,
		Text: "I've learned that people will forget what you said, people will forget what you did, " +
			"but people will never forget how you made them feel.",
		Tags: []string{"emotion", "memory", "impact"},
	},
}

// Seeder populates an empty store with DemoCatalog.
type Seeder struct {
	Quotations ports.QuotationRepository
	Authors    ports.AuthorRepository
	Sources    ports.SourceRepository

	// Index receives the seeded quotations when set.
	Index   ports.QuotationIndex
	Entries []SeedEntry
	Workers int
}

// Seed inserts the entries when no author exists yet and reports whether it did.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	logger := logging.FromContext(ctx).With(slog.String("component", "seeder"))

	count, err := s.Authors.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("counting authors: %w", err)
	}
	if count > 0 {
		logger.InfoContext(ctx, "store already populated, skipping seed", slog.Int("authors", count))
		return false, nil
	}

	entries := s.Entries
	if entries == nil {
		entries = DemoCatalog
	}

	workers := s.Workers
	if workers < 1 {
		workers = len(entries)
	}

	if err := FanOut(ctx, workers, entries, s.seedEntry); err != nil {
		return false, fmt.Errorf("seeding: %w", err)
	}

	logger.InfoContext(ctx, "seeded demo catalog", slog.Int("quotations", len(entries)))

	return true, nil
}

func (s *Seeder) seedEntry(ctx context.Context, e SeedEntry) error {
	now := time.Now().UTC()
	year := e.SourceYear

	author := &domain.Author{
		ID:             uuid.NewString(),
		Name:           e.AuthorName,
		Lifespan:       e.Lifespan,
		Occupation:     e.Occupation,
		QuotationCount: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Authors.Create(ctx, author); err != nil {
		return fmt.Errorf("creating author %q: %w", e.AuthorName, err)
	}

	source := &domain.Source{
		ID:             uuid.NewString(),
		Title:          e.SourceTitle,
		Type:           e.SourceType,
		Year:           &year,
		QuotationCount: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Sources.Create(ctx, source); err != nil {
		return fmt.Errorf("creating source %q: %w", e.SourceTitle, err)
	}

	q := domain.NewQuotation(uuid.NewString(), e.Text, author.Ref(), source.Ref(), e.Tags, nil, now)
	if err := q.Approve(domain.UserRef{ID: "system", Username: "Seeder"}, "", now); err != nil {
		return err
	}
	if err := s.Quotations.Create(ctx, q); err != nil {
		return fmt.Errorf("creating quotation: %w", err)
	}

	if s.Index != nil {
		if err := s.Index.Index(ctx, q); err != nil {
			logging.FromContext(ctx).WarnContext(ctx, "indexing seeded quotation failed",
				slog.String("quotation_id", q.ID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}
