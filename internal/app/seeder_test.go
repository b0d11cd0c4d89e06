package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotations-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/mocks"
)

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	index := mocks.NewMockQuotationIndex(t)
	index.EXPECT().Index(mock.Anything, mock.Anything).Return(nil).Times(len(DemoCatalog))

	seeder := &Seeder{
		Quotations: store.Quotations(),
		Authors:    store.Authors(),
		Sources:    store.Sources(),
		Index:      index,
	}

	seeded, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	page, err := store.Quotations().List(ctx, domain.QuotationFilter{}, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	for _, q := range page.Items {
		assert.Equal(t, domain.StatusApproved, q.Status)
		assert.Len(t, q.Tags, 3)
	}

	angelou, err := store.Authors().FindByName(ctx, "Maya Angelou")
	require.NoError(t, err)
	assert.Equal(t, "1928-2014", angelou.Lifespan)
	assert.Equal(t, 1, angelou.QuotationCount)

	again, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, again, "a populated store is left alone")
}

func TestSeeder_SkipsWhenAuthorsExist(t *testing.T) {
	authors := mocks.NewMockAuthorRepository(t)
	authors.EXPECT().Count(mock.Anything).Return(12, nil)

	seeder := &Seeder{
		Quotations: mocks.NewMockQuotationRepository(t),
		Authors:    authors,
		Sources:    mocks.NewMockSourceRepository(t),
	}

	seeded, err := seeder.Seed(context.Background())

	require.NoError(t, err)
	assert.False(t, seeded)
}
