package observer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

type recordingStore struct {
	mu          sync.Mutex
	transfers   []*model.LargeTransfer
	delegations []*model.ResourceDelegationStats
	blocks      []*model.BlockStats
	err         error
}

func (s *recordingStore) SaveLargeTransfer(_ context.Context, transfer *model.LargeTransfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.transfers = append(s.transfers, transfer)
	return nil
}

func (s *recordingStore) IncrementResourceDelegationStats(_ context.Context, stats *model.ResourceDelegationStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.delegations = append(s.delegations, stats)
	return nil
}

func (s *recordingStore) UpsertBlockStats(_ context.Context, stats *model.BlockStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.blocks = append(s.blocks, stats)
	return nil
}

type recordingPublisher struct {
	published []*model.LargeTransfer
	err       error
}

func (p *recordingPublisher) PublishLargeTransfer(_ context.Context, transfer *model.LargeTransfer) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, transfer)
	return nil
}

func TestLargeTransferObserver(t *testing.T) {
	ts := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	transfer := func(id string, trx int64) *Transaction {
		return &Transaction{TxID: id, BlockNumber: 42, Timestamp: ts, Type: TypeTransfer, From: "TA", To: "TB", Amount: trx * SunPerTrx}
	}

	t.Run("threshold is inclusive", func(t *testing.T) {
		store := &recordingStore{}
		publisher := &recordingPublisher{}
		o := NewLargeTransferObserver(10, 1_000, store, publisher)
		ctx := t.Context()

		require.NoError(t, o.handle(ctx, transfer("below", 999)))
		require.NoError(t, o.handle(ctx, transfer("at", 1_000)))
		require.NoError(t, o.handle(ctx, transfer("above", 5_000)))
		require.NoError(t, o.handle(ctx, &Transaction{TxID: "contract", Type: TypeTriggerSmart, Amount: 9_000 * SunPerTrx}))

		require.Len(t, store.transfers, 2)
		assert.Equal(t, "at", store.transfers[0].TxID)
		assert.Equal(t, int64(1_000*SunPerTrx), store.transfers[0].AmountSun)
		assert.Equal(t, ts, store.transfers[0].Timestamp)
		assert.Len(t, publisher.published, 2)
	})

	t.Run("publisher is optional", func(t *testing.T) {
		store := &recordingStore{}
		o := NewLargeTransferObserver(10, 1, store, nil)

		require.NoError(t, o.handle(t.Context(), transfer("solo", 2)))
		assert.Len(t, store.transfers, 1)
	})

	t.Run("store failure is not published", func(t *testing.T) {
		store := &recordingStore{err: errors.New("write failed")}
		publisher := &recordingPublisher{}
		o := NewLargeTransferObserver(10, 1, store, publisher)

		require.Error(t, o.handle(t.Context(), transfer("lost", 2)))
		assert.Empty(t, publisher.published)
	})

	t.Run("publish failure is reported", func(t *testing.T) {
		o := NewLargeTransferObserver(10, 1, &recordingStore{}, &recordingPublisher{err: errors.New("broker down")})

		err := o.handle(t.Context(), transfer("unannounced", 2))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker down")
	})
}

func TestResourceDelegationObserver(t *testing.T) {
	hour := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	delegate := func(minute int, trx int64, resource string) *Transaction {
		return &Transaction{Type: TypeDelegateResource, Timestamp: hour.Add(time.Duration(minute) * time.Minute), Amount: trx * SunPerTrx, Resource: resource}
	}
	reclaim := func(minute int, trx int64) *Transaction {
		return &Transaction{Type: TypeUnDelegateResource, Timestamp: hour.Add(time.Duration(minute) * time.Minute), Amount: trx * SunPerTrx, Resource: "ENERGY"}
	}

	t.Run("aggregates per hour and skips bandwidth", func(t *testing.T) {
		store := &recordingStore{}
		o := NewResourceDelegationObserver(10, store)

		batch := TypeGroupedBatch{
			TypeDelegateResource: {
				delegate(5, 100, "ENERGY"),
				delegate(55, 50, ""),
				delegate(65, 10, "ENERGY"),
				delegate(10, 999, "BANDWIDTH"),
			},
			TypeUnDelegateResource: {reclaim(30, 20)},
		}
		require.NoError(t, o.handle(t.Context(), batch))

		require.Len(t, store.delegations, 2)
		byBucket := make(map[time.Time]*model.ResourceDelegationStats)
		for _, stats := range store.delegations {
			byBucket[stats.Bucket] = stats
		}

		first := byBucket[hour]
		require.NotNil(t, first)
		assert.Equal(t, int64(150*SunPerTrx), first.DelegatedSun)
		assert.Equal(t, int64(2), first.DelegationCount)
		assert.Equal(t, int64(20*SunPerTrx), first.ReclaimedSun)
		assert.Equal(t, int64(1), first.ReclaimCount)

		second := byBucket[hour.Add(time.Hour)]
		require.NotNil(t, second)
		assert.Equal(t, int64(10*SunPerTrx), second.DelegatedSun)
		assert.Zero(t, second.ReclaimCount)
	})

	t.Run("store errors are joined", func(t *testing.T) {
		o := NewResourceDelegationObserver(10, &recordingStore{err: errors.New("write failed")})

		err := o.handle(t.Context(), TypeGroupedBatch{
			TypeDelegateResource: {delegate(1, 1, "ENERGY"), delegate(61, 1, "ENERGY")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write failed")
	})

	t.Run("bandwidth only batch writes nothing", func(t *testing.T) {
		store := &recordingStore{}
		o := NewResourceDelegationObserver(10, store)

		require.NoError(t, o.handle(t.Context(), TypeGroupedBatch{
			TypeDelegateResource: {delegate(1, 1, "BANDWIDTH")},
		}))
		assert.Empty(t, store.delegations)
	})
}

func TestBlockStatsObserver(t *testing.T) {
	block := &BlockData{
		Number:    70_123_456,
		Hash:      "00000000042e0d40",
		Timestamp: time.Date(2025, 2, 10, 8, 0, 3, 0, time.UTC),
		Transactions: []*Transaction{
			{Type: TypeTransfer, Amount: 3 * SunPerTrx},
			{Type: TypeTransfer, Amount: 7 * SunPerTrx},
			{Type: TypeTriggerSmart, Energy: 64_285},
			{Type: TypeTriggerSmart, Energy: 31_895},
		},
	}

	stats := SummarizeBlock(block)
	assert.Equal(t, block.Number, stats.Number)
	assert.Equal(t, block.Hash, stats.Hash)
	assert.Equal(t, 4, stats.TxCount)
	assert.Equal(t, map[string]int{TypeTransfer: 2, TypeTriggerSmart: 2}, stats.TxCountByType)
	assert.Equal(t, int64(96_180), stats.TotalEnergy)
	assert.Equal(t, int64(10*SunPerTrx), stats.TransferSun)

	empty := SummarizeBlock(&BlockData{Number: 1})
	assert.Zero(t, empty.TxCount)
	assert.Empty(t, empty.TxCountByType)

	store := &recordingStore{}
	o := NewBlockStatsObserver(10, store)
	require.NoError(t, o.handle(t.Context(), block))
	require.Len(t, store.blocks, 1)
	assert.Equal(t, stats, store.blocks[0])
}
