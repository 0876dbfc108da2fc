package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterDoc struct {
	version int
	value   int
}

func TestRetryOnConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves after a conflict", func(t *testing.T) {
		loads, saves := 0, 0
		doc, err := RetryOnConflict(ctx, "alpha",
			func(context.Context) (*counterDoc, error) {
				loads++
				return &counterDoc{version: loads}, nil
			},
			func(d *counterDoc) error {
				d.value++
				return nil
			},
			func(_ context.Context, d *counterDoc) error {
				saves++
				if saves == 1 {
					return &VersionConflictError{Key: "alpha"}
				}
				return nil
			},
		)
		require.NoError(t, err)
		assert.Equal(t, 2, loads)
		assert.Equal(t, 2, doc.version)
		assert.Equal(t, 1, doc.value)
	})

	t.Run("escalates after three conflicts", func(t *testing.T) {
		attempts := 0
		_, err := RetryOnConflict(ctx, "alpha",
			func(context.Context) (*counterDoc, error) { return &counterDoc{}, nil },
			func(*counterDoc) error { return nil },
			func(context.Context, *counterDoc) error {
				attempts++
				return &DuplicateKeyError{Key: "alpha", Message: "exists"}
			},
		)
		require.Error(t, err)
		assert.True(t, IsDuplicateKeyError(err))
		assert.Equal(t, conflictRetryAttempts, attempts)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		attempts := 0
		boom := errors.New("boom")
		_, err := RetryOnConflict(ctx, "alpha",
			func(context.Context) (*counterDoc, error) { return &counterDoc{}, nil },
			func(*counterDoc) error { return nil },
			func(context.Context, *counterDoc) error {
				attempts++
				return boom
			},
		)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 1, attempts)
	})

	t.Run("load error is returned as is", func(t *testing.T) {
		boom := errors.New("load failed")
		_, err := RetryOnConflict(ctx, "alpha",
			func(context.Context) (*counterDoc, error) { return nil, boom },
			func(*counterDoc) error { return nil },
			func(context.Context, *counterDoc) error { return nil },
		)
		require.ErrorIs(t, err, boom)
	})
}
