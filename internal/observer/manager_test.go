package observer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder[T any] struct {
	mu    sync.Mutex
	items []T
}

func (r *recorder[T]) handle(_ context.Context, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

func (r *recorder[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func TestManager(t *testing.T) {
	transfers := &recorder[*Transaction]{}
	everything := &recorder[*Transaction]{}
	delegations := &recorder[TypeGroupedBatch]{}
	blocks := &recorder[*BlockData]{}

	m := NewManager()
	m.SubscribeTransactions(NewTransactionObserver("transfers", 10, transfers.handle), TypeTransfer)
	m.SubscribeTransactions(NewTransactionObserver("everything", 10, everything.handle))
	m.SubscribeBatches(NewBatchObserver("delegations", 10, delegations.handle), TypeDelegateResource)
	m.SubscribeBlocks(NewBlockObserver("blocks", 10, blocks.handle))

	m.Start(t.Context())

	m.Notify(&Transaction{TxID: "1", Type: TypeTransfer})
	m.Notify(&Transaction{TxID: "2", Type: TypeTriggerSmart})
	m.Notify(nil)

	m.NotifyBatch(TypeGroupedBatch{
		TypeDelegateResource: {{TxID: "3", Type: TypeDelegateResource}},
		TypeTransfer:         {{TxID: "4", Type: TypeTransfer}},
	})
	// nothing the delegation observer subscribed to
	m.NotifyBatch(TypeGroupedBatch{TypeTransfer: {{TxID: "5", Type: TypeTransfer}}})

	m.NotifyBlock(&BlockData{Number: 10})

	require.Eventually(t, func() bool {
		return transfers.len() == 1 && everything.len() == 2 && delegations.len() == 1 && blocks.len() == 1
	}, time.Second, 5*time.Millisecond)

	delegations.mu.Lock()
	batch := delegations.items[0]
	delegations.mu.Unlock()
	assert.Len(t, batch, 1)
	assert.Contains(t, batch, TypeDelegateResource)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Stop(ctx))

	stats := m.Stats()
	require.Len(t, stats, 4)
	byName := make(map[string]Stats)
	for _, s := range stats {
		byName[s.Name] = s
	}
	assert.EqualValues(t, 2, byName["everything"].TotalProcessed)
	assert.Equal(t, "drop_all", byName["transfers"].Policy)
	assert.Equal(t, "drop_newest", byName["blocks"].Policy)
	assert.Equal(t, KindBatch, byName["delegations"].Kind)
}

func TestManager_SubscribeAfterStart(t *testing.T) {
	rec := &recorder[*Transaction]{}

	m := NewManager()
	m.Start(t.Context())
	m.SubscribeTransactions(NewTransactionObserver("late", 10, rec.handle))

	m.Notify(&Transaction{TxID: "1", Type: TypeTransfer})
	require.Eventually(t, func() bool { return rec.len() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Stop(ctx))
}
