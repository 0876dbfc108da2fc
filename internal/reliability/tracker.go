// Package reliability keeps rolling success/failure statistics per market source.
package reliability

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/db"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
	"github.com/tronrelic/tronrelic-indexer/internal/observability/metrics"
)

const (
	// EMAAlpha weights the newest availability reading
	EMAAlpha = 0.3

	MaxReasonLength = 256
	unknownReason   = "unknown"
)

type Tracker struct {
	store db.ReliabilityStore
	now   func() time.Time
}

func NewTracker(store db.ReliabilityStore) *Tracker {
	return &Tracker{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// recordState carries the version the record was read at between load and save
type recordState struct {
	record          *model.ReliabilityRecord
	expectedVersion int64
	isNew           bool
}

// RecordSuccess counts a successful fetch. availability feeds the EMA, both
// availability and price are optional and only kept in the history entry.
func (t *Tracker) RecordSuccess(
	ctx context.Context, guid string, availability *float64, price *float64,
) (*model.ReliabilityRecord, error) {
	now := t.now()
	record, err := t.update(ctx, guid, func(r *model.ReliabilityRecord) {
		r.SuccessCount++
		r.SuccessStreak++
		r.FailureStreak = 0
		r.LastSuccess = &now
		if availability != nil {
			r.EMAAvailability = nextEMA(r.EMAAvailability, *availability)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record success for %s: %w", guid, err)
	}

	t.appendHistory(ctx, &model.ReliabilityHistory{
		Guid:         guid,
		Status:       model.ReliabilitySuccess,
		Reliability:  record.Reliability,
		Availability: availability,
		Price:        price,
		Timestamp:    now,
	})
	return record, nil
}

// RecordFailure counts a failed fetch, the EMA is left untouched
func (t *Tracker) RecordFailure(ctx context.Context, guid string, reason string) (*model.ReliabilityRecord, error) {
	now := t.now()
	record, err := t.update(ctx, guid, func(r *model.ReliabilityRecord) {
		r.FailureCount++
		r.FailureStreak++
		r.SuccessStreak = 0
		r.LastFailure = &now
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record failure for %s: %w", guid, err)
	}

	t.appendHistory(ctx, &model.ReliabilityHistory{
		Guid:        guid,
		Status:      model.ReliabilityFailure,
		Reliability: record.Reliability,
		Reason:      truncateReason(reason),
		Timestamp:   now,
	})
	return record, nil
}

func (t *Tracker) update(
	ctx context.Context, guid string, mutate func(r *model.ReliabilityRecord),
) (*model.ReliabilityRecord, error) {
	load := func(ctx context.Context) (*recordState, error) {
		record, err := t.store.GetReliability(ctx, guid)
		if err != nil {
			if db.IsNotFoundError(err) {
				return &recordState{record: model.NewReliabilityRecord(guid), isNew: true}, nil
			}
			return nil, err
		}
		return &recordState{record: record, expectedVersion: record.Version}, nil
	}

	apply := func(s *recordState) error {
		mutate(s.record)
		s.record.Reliability = Ratio(s.record.SuccessCount, s.record.FailureCount)
		s.record.Version = s.expectedVersion + 1
		s.record.UpdatedAt = t.now()
		return nil
	}

	save := func(ctx context.Context, s *recordState) error {
		if s.isNew {
			return t.store.InsertReliability(ctx, s.record)
		}
		return t.store.UpdateReliability(ctx, s.record, s.expectedVersion)
	}

	state, err := db.RetryOnConflict(ctx, guid, load, apply, save)
	if err != nil {
		return nil, err
	}

	metrics.RecordMarketReliability(guid, state.record.Reliability)
	return state.record, nil
}

// history is best effort, the counters are already persisted at this point
func (t *Tracker) appendHistory(ctx context.Context, entry *model.ReliabilityHistory) {
	if err := t.store.SaveReliabilityHistory(ctx, entry); err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("guid", entry.Guid).
			Str("status", string(entry.Status)).
			Msg("failed to append reliability history")
	}
}

// Ratio is successes over attempts rounded to 4 decimals, 0 without attempts
func Ratio(successes, failures int64) float64 {
	total := successes + failures
	if total <= 0 {
		return 0
	}
	return round4(float64(successes) / float64(total))
}

func nextEMA(prev *float64, reading float64) *float64 {
	next := reading
	if prev != nil {
		next = EMAAlpha*reading + (1-EMAAlpha)*(*prev)
	}
	next = round4(next)
	return &next
}

func truncateReason(reason string) string {
	if reason == "" {
		return unknownReason
	}
	if utf8.RuneCountInString(reason) <= MaxReasonLength {
		return reason
	}
	return string([]rune(reason)[:MaxReasonLength])
}

func round4(v float64) float64 {
	return math.Round(v*10_000) / 10_000
}
