package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotations-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/mocks"
	"github.com/jsamuelsen/quotations-service/internal/ports"
)

// seededStore returns a store holding the demo catalog plus one pending quotation.
func seededStore(t *testing.T) (*memory.Store, *domain.Quotation) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	seeder := &Seeder{Quotations: store.Quotations(), Authors: store.Authors(), Sources: store.Sources()}
	seeded, err := seeder.Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	review := NewReviewService(ReviewServiceConfig{
		Quotations: store.Quotations(),
		Authors:    store.Authors(),
		Sources:    store.Sources(),
	})
	pending, err := review.Submit(ctx, domain.Submission{
		Text:        "Live as if you were to die tomorrow.",
		AuthorName:  "mahatma gandhi",
		SourceTitle: "Young India",
		SourceType:  "other",
		Tags:        []string{"life"},
		SubmitterID: "u-1",
	})
	require.NoError(t, err)

	return store, pending
}

func newCatalog(store *memory.Store, cfg CatalogServiceConfig) *CatalogService {
	cfg.Quotations = store.Quotations()
	cfg.Authors = store.Authors()
	cfg.Sources = store.Sources()
	return NewCatalogService(cfg)
}

func TestNewCatalogService_PanicsWithoutRepositories(t *testing.T) {
	assert.Panics(t, func() {
		NewCatalogService(CatalogServiceConfig{})
	})
}

func TestCatalogService_ListAndQueues(t *testing.T) {
	ctx := context.Background()
	store, pending := seededStore(t)
	svc := newCatalog(store, CatalogServiceConfig{})

	browse, err := svc.List(ctx, domain.QuotationFilter{}, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, browse.TotalCount, "browsing shows approved quotations only")

	queue, err := svc.Pending(ctx, domain.PageRequest{})
	require.NoError(t, err)
	require.Len(t, queue.Items, 1)
	assert.Equal(t, pending.ID, queue.Items[0].ID)

	mine, err := svc.MySubmissions(ctx, "u-1", domain.PageRequest{})
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)
	assert.Equal(t, domain.StatusPending, mine.Items[0].Status)

	_, err = svc.MySubmissions(ctx, "", domain.PageRequest{})
	assert.True(t, domain.IsValidation(err))

	got, err := svc.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mahatma Gandhi", got.Author.Name)

	_, err = svc.Get(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestCatalogService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query is a validation error", func(t *testing.T) {
		store, _ := seededStore(t)
		svc := newCatalog(store, CatalogServiceConfig{})

		_, err := svc.Search(ctx, "   ", domain.PageRequest{})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("without index uses repository search", func(t *testing.T) {
		store, _ := seededStore(t)
		svc := newCatalog(store, CatalogServiceConfig{})

		page, err := svc.Search(ctx, "imagination", domain.PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Albert Einstein", page.Items[0].Author.Name)
	})

	t.Run("index hits are hydrated and stale entries dropped", func(t *testing.T) {
		store, pending := seededStore(t)
		approved, err := store.Quotations().List(ctx, domain.QuotationFilter{}, domain.PageRequest{})
		require.NoError(t, err)

		index := mocks.NewMockQuotationIndex(t)
		index.EXPECT().Search(mock.Anything, "world", domain.PageRequest{Page: 1, PageSize: 20}).
			Return([]string{approved.Items[0].ID, "deleted", pending.ID}, 3, nil)

		svc := newCatalog(store, CatalogServiceConfig{Index: index})
		page, err := svc.Search(ctx, " world ", domain.PageRequest{})

		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, approved.Items[0].ID, page.Items[0].ID)
		assert.Equal(t, 1, page.TotalCount, "dropped hits leave the total")
		assert.Equal(t, 1, page.TotalPages)
		assert.False(t, page.HasNext)
	})

	t.Run("dropped hits on a later page keep the total consistent", func(t *testing.T) {
		store, pending := seededStore(t)
		approved, err := store.Quotations().List(ctx, domain.QuotationFilter{}, domain.PageRequest{})
		require.NoError(t, err)

		req := domain.PageRequest{Page: 2, PageSize: 2}
		index := mocks.NewMockQuotationIndex(t)
		index.EXPECT().Search(mock.Anything, "world", req).
			Return([]string{approved.Items[0].ID, pending.ID}, 7, nil)

		svc := newCatalog(store, CatalogServiceConfig{Index: index})
		page, err := svc.Search(ctx, "world", req)

		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, 6, page.TotalCount)
		assert.True(t, page.HasNext)
	})

	t.Run("index failure falls back to repository", func(t *testing.T) {
		store, _ := seededStore(t)
		index := mocks.NewMockQuotationIndex(t)
		index.EXPECT().Search(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, 0, domain.NewUnavailableError("meilisearch", "unhealthy"))

		svc := newCatalog(store, CatalogServiceConfig{Index: index})
		page, err := svc.Search(ctx, "change", domain.PageRequest{})

		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Be the change you wish to see in the world.", page.Items[0].Text)
	})
}

func TestCatalogService_TagsUsesCache(t *testing.T) {
	ctx := context.Background()
	store, _ := seededStore(t)
	cache := mocks.NewMockCache(t)

	var stored []byte
	cache.EXPECT().Get(mock.Anything, cacheKeyTags).Return(nil, ports.ErrCacheMiss).Once()
	cache.EXPECT().Set(mock.Anything, cacheKeyTags, mock.Anything, 5*time.Minute).
		Run(func(_ context.Context, _ string, value []byte, _ time.Duration) { stored = value }).
		Return(nil).Once()

	svc := newCatalog(store, CatalogServiceConfig{Cache: cache, CacheTTL: 5 * time.Minute})

	tags, err := svc.Tags(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	var cached []domain.TagCount
	require.NoError(t, json.Unmarshal(stored, &cached))
	assert.Len(t, cached, 9, "the full tag cloud is cached")

	cache.EXPECT().Get(mock.Anything, cacheKeyTags).Return(stored, nil).Once()

	again, err := svc.Tags(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, again, 9)
}

func TestCatalogService_CacheFailureFallsThrough(t *testing.T) {
	store, _ := seededStore(t)
	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything, cacheKeyAuthors).Return(nil, errors.New("connection reset"))
	cache.EXPECT().Set(mock.Anything, cacheKeyAuthors, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	svc := newCatalog(store, CatalogServiceConfig{Cache: cache})

	authors, err := svc.Authors(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, authors, 3)
	assert.Equal(t, "Albert Einstein", authors[0].Name)
}

func TestCatalogService_Author(t *testing.T) {
	ctx := context.Background()
	store, _ := seededStore(t)
	einstein, err := store.Authors().FindByName(ctx, "Albert Einstein")
	require.NoError(t, err)

	tests := []struct {
		name        string
		setup       func(*mocks.MockAuthorDirectory)
		wantProfile bool
	}{
		{
			name: "enriched from directory",
			setup: func(d *mocks.MockAuthorDirectory) {
				d.EXPECT().Lookup(mock.Anything, "Albert Einstein").Return(&domain.AuthorProfile{
					Name:        "Albert Einstein",
					Description: "German-born physicist",
				}, nil)
			},
			wantProfile: true,
		},
		{
			name: "directory miss",
			setup: func(d *mocks.MockAuthorDirectory) {
				d.EXPECT().Lookup(mock.Anything, mock.Anything).Return(nil, domain.NewNotFoundError("profile", "Albert Einstein"))
			},
		},
		{
			name: "directory down degrades",
			setup: func(d *mocks.MockAuthorDirectory) {
				d.EXPECT().Lookup(mock.Anything, mock.Anything).Return(nil, domain.NewUnavailableError("quotable", "circuit open"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := mocks.NewMockAuthorDirectory(t)
			tt.setup(dir)
			svc := newCatalog(store, CatalogServiceConfig{Directory: dir})

			details, err := svc.Author(ctx, einstein.ID)

			require.NoError(t, err)
			assert.Equal(t, einstein.ID, details.Author.ID)
			assert.Equal(t, tt.wantProfile, details.Profile != nil)
		})
	}

	svc := newCatalog(store, CatalogServiceConfig{})
	_, err = svc.Author(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestCatalogService_Sources(t *testing.T) {
	ctx := context.Background()
	store, _ := seededStore(t)
	svc := newCatalog(store, CatalogServiceConfig{})

	all, err := svc.Sources(ctx, nil, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	book := domain.SourceTypeBook
	books, err := svc.Sources(ctx, &book, 2)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "I Know Why the Caged Bird Sings", books[0].Title)

	got, err := svc.Source(ctx, books[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got.Year)
	assert.Equal(t, 1969, *got.Year)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultCatalogLimit, clampLimit(0, MaxAuthorLimit))
	assert.Equal(t, 7, clampLimit(7, MaxAuthorLimit))
	assert.Equal(t, MaxAuthorLimit, clampLimit(10_000, MaxAuthorLimit))
}
