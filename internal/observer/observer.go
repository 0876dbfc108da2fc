package observer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime/debug"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Handler processes one dequeued item. Returned errors and panics are
// counted and logged, the item is never re-queued.
type Handler[T any] func(ctx context.Context, item T) error

// Observer owns a capped FIFO queue drained serially by a single goroutine.
// Enqueue never blocks and is safe from any goroutine, also before Start.
type Observer[T any] struct {
	name     string
	kind     Kind
	capacity int
	policy   OverflowPolicy
	handler  Handler[T]
	// unitSize reports batch size or transactions per block, nil for single items
	unitSize func(T) int

	mu         sync.Mutex
	queue      []T
	processing bool
	started    bool
	stopped    bool

	totalProcessed  uint64
	totalErrors     uint64
	totalDropped    uint64
	totalDuration   time.Duration
	minDuration     time.Duration
	maxDuration     time.Duration
	lastProcessedAt time.Time
	lastErrorAt     time.Time
	unitSizeTotal   uint64
	unitSizeMax     int
	unitCount       uint64

	wake chan struct{}
	quit chan struct{}
	done chan struct{}

	logger zerolog.Logger
}

func newObserver[T any](name string, kind Kind, capacity int, policy OverflowPolicy, handler Handler[T]) *Observer[T] {
	return &Observer[T]{
		name:     name,
		kind:     kind,
		capacity: capacity,
		policy:   policy,
		handler:  handler,
		wake:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		logger: log.With().
			Str("component", "observer").
			Str("observer", name).
			Str("kind", string(kind)).
			Logger(),
	}
}

func (o *Observer[T]) Name() string {
	return o.name
}

func (o *Observer[T]) Policy() OverflowPolicy {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.policy
}

// Enqueue adds item to the queue and wakes the drain loop. It returns false
// when the incoming item itself was dropped.
func (o *Observer[T]) Enqueue(item T) bool {
	o.mu.Lock()
	if o.stopped {
		o.totalDropped++
		o.mu.Unlock()
		o.logger.Warn().Msg("observer stopped, dropping incoming item")
		return false
	}

	if len(o.queue) >= o.capacity {
		switch o.policy {
		case DropAll:
			dropped := len(o.queue)
			clear(o.queue)
			o.queue = o.queue[:0]
			o.totalDropped += uint64(dropped)
			o.logger.Warn().
				Int("dropped", dropped).
				Int("capacity", o.capacity).
				Msg("queue overflow, cleared all queued items")
		default:
			o.totalDropped++
			o.mu.Unlock()
			o.logger.Warn().
				Int("capacity", o.capacity).
				Msg("queue overflow, dropped incoming item")
			return false
		}
	}

	o.queue = append(o.queue, item)
	o.mu.Unlock()

	select {
	case o.wake <- struct{}{}:
	default:
	}
	return true
}

// Start spawns the drain goroutine. Calling Start twice is a no-op.
// Cancelling ctx does not end the loop, only Stop does, so queued items
// survive a signal cancelled server context until Stop drains them.
func (o *Observer[T]) Start(ctx context.Context) {
	o.mu.Lock()
	if o.started || o.stopped {
		o.mu.Unlock()
		return
	}
	o.started = true
	pending := len(o.queue)
	policy := o.policy
	o.mu.Unlock()

	o.logger.Info().Int("pending", pending).Str("policy", policy.String()).Msg("starting observer")

	go o.run(context.WithoutCancel(ctx))

	if pending > 0 {
		select {
		case o.wake <- struct{}{}:
		default:
		}
	}
}

// Stop rejects further items, drains what is already queued and returns once
// the drain loop exited or ctx is done.
func (o *Observer[T]) Stop(ctx context.Context) error {
	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return nil
	}
	o.stopped = true
	started := o.started
	o.mu.Unlock()

	if !started {
		return nil
	}

	close(o.quit)

	select {
	case <-o.done:
		o.logger.Info().Msg("observer stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("observer %s did not drain before shutdown: %w", o.name, ctx.Err())
	}
}

func (o *Observer[T]) run(ctx context.Context) {
	defer close(o.done)

	for {
		select {
		case <-o.wake:
			o.drain(ctx)
		case <-o.quit:
			o.drain(ctx)
			return
		}
	}
}

func (o *Observer[T]) drain(ctx context.Context) {
	o.mu.Lock()
	o.processing = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.processing = false
		o.mu.Unlock()
	}()

	for {
		o.mu.Lock()
		if len(o.queue) == 0 {
			o.mu.Unlock()
			return
		}
		item := o.queue[0]
		var zero T
		o.queue[0] = zero
		o.queue = o.queue[1:]
		o.mu.Unlock()

		o.process(ctx, item)
	}
}

func (o *Observer[T]) process(ctx context.Context, item T) {
	start := time.Now()
	err := o.invoke(ctx, item)
	elapsed := time.Since(start)

	o.mu.Lock()
	defer o.mu.Unlock()

	o.totalDuration += elapsed
	if o.totalProcessed+o.totalErrors == 0 || elapsed < o.minDuration {
		o.minDuration = elapsed
	}
	if elapsed > o.maxDuration {
		o.maxDuration = elapsed
	}
	if o.unitSize != nil {
		size := o.unitSize(item)
		o.unitSizeTotal += uint64(size)
		o.unitCount++
		if size > o.unitSizeMax {
			o.unitSizeMax = size
		}
	}

	if err != nil {
		o.totalErrors++
		o.lastErrorAt = time.Now()
		o.logger.Error().
			Err(err).
			Str("item", describe(item)).
			Dur("duration", elapsed).
			Msg("failed to process item")
		return
	}

	o.totalProcessed++
	o.lastProcessedAt = time.Now()
}

// invoke converts handler panics into errors so one item cannot kill the loop
func (o *Observer[T]) invoke(ctx context.Context, item T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
			o.logger.Debug().Str("stack", string(debug.Stack())).Msg("recovered handler panic")
		}
	}()

	if o.handler == nil {
		return errors.New("observer has no handler")
	}
	return o.handler(ctx, item)
}

// Stats is a consistent snapshot of the running counters
func (o *Observer[T]) Stats() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()

	handled := o.totalProcessed + o.totalErrors
	stats := Stats{
		Name:                o.name,
		Kind:                o.kind,
		Policy:              o.policy.String(),
		QueueDepth:          len(o.queue),
		Capacity:            o.capacity,
		IsProcessing:        o.processing,
		TotalProcessed:      o.totalProcessed,
		TotalErrors:         o.totalErrors,
		TotalDropped:        o.totalDropped,
		MinProcessingTimeMs: durationMs(o.minDuration),
		MaxProcessingTimeMs: durationMs(o.maxDuration),
	}
	if !o.lastProcessedAt.IsZero() {
		t := o.lastProcessedAt
		stats.LastProcessedAt = &t
	}
	if !o.lastErrorAt.IsZero() {
		t := o.lastErrorAt
		stats.LastErrorAt = &t
	}
	if handled > 0 {
		stats.AvgProcessingTimeMs = round2(durationMs(o.totalDuration) / float64(handled))
		stats.ErrorRate = round2(float64(o.totalErrors) / float64(handled))
	}

	var avgUnit float64
	if o.unitCount > 0 {
		avgUnit = round2(float64(o.unitSizeTotal) / float64(o.unitCount))
	}
	switch o.kind {
	case KindBatch:
		stats.AvgBatchSize = avgUnit
		stats.MaxBatchSize = o.unitSizeMax
	case KindBlock:
		stats.AvgTxPerBlock = avgUnit
		stats.MaxTxPerBlock = o.unitSizeMax
	}

	return stats
}

func describe(item any) string {
	if s, ok := item.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", item)
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
