//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tronrelic/tronrelic-indexer/internal/db"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

func TestReliability(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("not found", func(t *testing.T) {
		record, err := testDB.GetReliability(ctx, gofakeit.UUID())
		assert.True(t, db.IsNotFoundError(err))
		assert.Nil(t, record)
	})
	t.Run("insert twice", func(t *testing.T) {
		record := model.NewReliabilityRecord(gofakeit.UUID())
		record.Version = 1
		record.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

		require.NoError(t, testDB.InsertReliability(ctx, record))

		err := testDB.InsertReliability(ctx, record)
		require.Error(t, err)
		assert.True(t, db.IsDuplicateKeyError(err))
		assert.True(t, db.IsConflictError(err))
	})
	t.Run("optimistic update", func(t *testing.T) {
		record := model.NewReliabilityRecord(gofakeit.UUID())
		record.Version = 1
		require.NoError(t, testDB.InsertReliability(ctx, record))

		record.SuccessCount = 1
		record.Reliability = 1
		record.Version = 2
		require.NoError(t, testDB.UpdateReliability(ctx, record, 1))

		// stale writer still thinks the record is at version 1
		stale := *record
		stale.FailureCount = 1
		stale.Version = 2
		err := testDB.UpdateReliability(ctx, &stale, 1)
		require.Error(t, err)
		assert.True(t, db.IsVersionConflictError(err))

		found, err := testDB.GetReliability(ctx, record.Guid)
		require.NoError(t, err)
		assert.EqualValues(t, 1, found.SuccessCount)
		assert.EqualValues(t, 0, found.FailureCount)
		assert.EqualValues(t, 2, found.Version)
	})
	t.Run("history newest first", func(t *testing.T) {
		guid := gofakeit.UUID()
		now := time.Now().UTC().Truncate(time.Millisecond)

		for i := range 3 {
			entry := &model.ReliabilityHistory{
				Guid:        guid,
				Status:      model.ReliabilitySuccess,
				Reliability: 1,
				Timestamp:   now.Add(time.Duration(i) * time.Minute),
			}
			require.NoError(t, testDB.SaveReliabilityHistory(ctx, entry))
		}

		entries, err := testDB.FindReliabilityHistory(ctx, guid, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))
	})
}

func TestChainParameters(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("not found", func(t *testing.T) {
		params, err := testDB.GetChainParameters(ctx)
		assert.True(t, db.IsNotFoundError(err))
		assert.Nil(t, params)
	})
	t.Run("ok", func(t *testing.T) {
		for _, fee := range []int64{420, 210} {
			params := &model.ChainParameters{
				EnergyFee:         fee,
				TotalEnergyLimit:  180_000_000_000,
				TotalEnergyWeight: 19_000_000_000,
				UpdatedAt:         time.Now().UTC().Truncate(time.Millisecond),
			}
			require.NoError(t, testDB.UpsertChainParameters(ctx, params))

			found, err := testDB.GetChainParameters(ctx)
			require.NoError(t, err)
			assert.Equal(t, params, found)
		}
	})
}
