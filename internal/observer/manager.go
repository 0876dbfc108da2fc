package observer

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/observability/metrics"
)

type lifecycle interface {
	Name() string
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Stats() Stats
}

type txSubscription struct {
	observer *Observer[*Transaction]
	types    map[string]struct{}
}

type batchSubscription struct {
	observer *Observer[TypeGroupedBatch]
	types    map[string]struct{}
}

// Manager routes decoded chain data to subscribed observers and supervises
// their drain goroutines
type Manager struct {
	mu      sync.RWMutex
	txs     []txSubscription
	batches []batchSubscription
	blocks  []*Observer[*BlockData]
	all     []lifecycle

	startCtx context.Context
	started  bool
}

func NewManager() *Manager {
	return &Manager{}
}

// SubscribeTransactions registers obs for the given contract types, no types means all
func (m *Manager) SubscribeTransactions(obs *Observer[*Transaction], types ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.txs = append(m.txs, txSubscription{observer: obs, types: typeSet(types)})
	m.register(obs)
}

// SubscribeBatches registers obs for batches restricted to the given types, no types means all
func (m *Manager) SubscribeBatches(obs *Observer[TypeGroupedBatch], types ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.batches = append(m.batches, batchSubscription{observer: obs, types: typeSet(types)})
	m.register(obs)
}

func (m *Manager) SubscribeBlocks(obs *Observer[*BlockData]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blocks = append(m.blocks, obs)
	m.register(obs)
}

// register must be called with mu held
func (m *Manager) register(obs lifecycle) {
	m.all = append(m.all, obs)
	if m.started {
		obs.Start(m.startCtx)
	}
}

func (m *Manager) Notify(tx *Transaction) {
	if tx == nil {
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.txs {
		if sub.matches(tx.Type) {
			sub.observer.Enqueue(tx)
		}
	}
}

// NotifyBatch hands every subscriber the part of batch it subscribed to,
// subscribers without a matching type get nothing
func (m *Manager) NotifyBatch(batch TypeGroupedBatch) {
	if len(batch) == 0 {
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.batches {
		filtered := sub.filter(batch)
		if len(filtered) > 0 {
			sub.observer.Enqueue(filtered)
		}
	}
}

func (m *Manager) NotifyBlock(block *BlockData) {
	if block == nil {
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, obs := range m.blocks {
		obs.Enqueue(block)
	}
}

func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return
	}
	m.started = true
	m.startCtx = ctx

	for _, obs := range m.all {
		obs.Start(ctx)
	}
	log.Ctx(ctx).Info().Int("observers", len(m.all)).Msg("observers started")
}

// Stop drains every observer, errors of observers that did not drain in time are joined
func (m *Manager) Stop(ctx context.Context) error {
	m.mu.RLock()
	observers := append([]lifecycle(nil), m.all...)
	m.mu.RUnlock()

	var wg sync.WaitGroup
	errs := make([]error, len(observers))
	for i, obs := range observers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = obs.Stop(ctx)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

// Stats returns a snapshot per observer and refreshes the observer gauges
func (m *Manager) Stats() []Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make([]Stats, 0, len(m.all))
	for _, obs := range m.all {
		s := obs.Stats()
		metrics.RecordObserverStats(s.Name, s.QueueDepth, s.TotalProcessed, s.TotalErrors, s.TotalDropped)
		stats = append(stats, s)
	}
	return stats
}

func typeSet(types []string) map[string]struct{} {
	if len(types) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

func (s txSubscription) matches(txType string) bool {
	if s.types == nil {
		return true
	}
	_, ok := s.types[txType]
	return ok
}

func (s batchSubscription) filter(batch TypeGroupedBatch) TypeGroupedBatch {
	filtered := make(TypeGroupedBatch, len(batch))
	for txType, txs := range batch {
		if len(txs) == 0 {
			continue
		}
		if s.types != nil {
			if _, ok := s.types[txType]; !ok {
				continue
			}
		}
		filtered[txType] = txs
	}
	return filtered
}
