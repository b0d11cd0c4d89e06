package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallel2(t *testing.T) {
	t.Run("returns both results", func(t *testing.T) {
		a, b, err := Parallel2(context.Background(),
			func(context.Context) (string, error) { return "author", nil },
			func(context.Context) (int, error) { return 42, nil },
		)

		require.NoError(t, err)
		assert.Equal(t, "author", a)
		assert.Equal(t, 42, b)
	})

	t.Run("first error cancels the other", func(t *testing.T) {
		boom := errors.New("boom")

		a, b, err := Parallel2(context.Background(),
			func(context.Context) (string, error) { return "", boom },
			func(ctx context.Context) (int, error) {
				select {
				case <-ctx.Done():
					return 0, ctx.Err()
				case <-time.After(5 * time.Second):
					return 1, nil
				}
			},
		)

		require.ErrorIs(t, err, boom)
		assert.Empty(t, a)
		assert.Zero(t, b)
	})
}

func TestFanOut(t *testing.T) {
	t.Run("processes every item", func(t *testing.T) {
		var sum atomic.Int64

		err := FanOut(context.Background(), 3, []int{1, 2, 3, 4, 5}, func(_ context.Context, n int) error {
			sum.Add(int64(n))
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, int64(15), sum.Load())
	})

	t.Run("stops on first error", func(t *testing.T) {
		boom := errors.New("boom")

		err := FanOut(context.Background(), 0, []int{1, 2, 3}, func(_ context.Context, n int) error {
			if n == 2 {
				return boom
			}
			return nil
		})

		require.ErrorIs(t, err, boom)
	})
}
