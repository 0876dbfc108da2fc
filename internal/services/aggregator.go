package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"

	"github.com/tronrelic/tronrelic-indexer/internal/change"
	"github.com/tronrelic/tronrelic-indexer/internal/db"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
	"github.com/tronrelic/tronrelic-indexer/internal/fetcher"
	"github.com/tronrelic/tronrelic-indexer/internal/observability/metrics"
	"github.com/tronrelic/tronrelic-indexer/internal/observability/tracing"
	"github.com/tronrelic/tronrelic-indexer/internal/pricing"
	"github.com/tronrelic/tronrelic-indexer/internal/utils/poller"
)

// failure reasons recorded by the aggregator itself
const (
	reasonEmptySnapshot  = "empty_snapshot"
	reasonSourceInactive = "source_inactive"
)

func (s *Service) StartMarketPoller(ctx context.Context) {
	marketPoller := poller.NewPoller(
		"markets",
		s.cfg.Poller.MarketPollingInterval,
		metrics.RecordPollerDuration("aggregate_markets", s.RunAggregation),
	)
	go marketPoller.Start(ctx, true)
}

// RunAggregation fetches every source concurrently, persists the results and
// re-ranks the active set. A failing source only degrades its own row.
// Overlapping runs are not guarded against, the poller never starts one.
func (s *Service) RunAggregation(ctx context.Context) error {
	ctx = tracing.InjectTraceID(ctx)
	logger := log.Ctx(ctx)
	startTime := time.Now()

	fetchers, err := s.fetchers.EnsureRegistered()
	if err != nil {
		return fmt.Errorf("failed to register fetchers: %w", err)
	}
	chain := s.ChainParameters(ctx)
	if chain == nil {
		logger.Warn().Msg("chain parameters unavailable, apy will not be computed")
	}

	run := newAggregationRun()
	var wg conc.WaitGroup
	for _, f := range fetchers {
		wg.Go(func() {
			var doc *model.MarketDocument
			var isChanged bool
			var err error

			recovered := panics.Try(func() {
				doc, isChanged, err = s.aggregateMarket(ctx, run, f, chain)
			})
			if recovered != nil {
				err = recovered.AsError()
			}
			if err != nil {
				logger.Error().Err(err).Str("guid", f.Guid()).Msg("market aggregation failed")
				s.recordFailure(ctx, run, f.Guid(), err.Error())
				return
			}
			if isChanged {
				run.markChanged(doc)
			}
		})
	}
	wg.Wait()
	changed := run.changed

	active, err := s.db.FindActiveMarkets(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active markets: %w", err)
	}
	if len(active) == 0 {
		logger.Warn().Int("fetchers", len(fetchers)).Msg("no active markets, skipping ranking")
		metrics.RecordAggregation(0, len(changed))
		return nil
	}

	run.applyReliability(active)
	if err := s.rankMarkets(ctx, active); err != nil {
		return err
	}
	if err := s.savePriceHistory(ctx, active); err != nil {
		return err
	}

	if err := s.cache.SetRankedMarkets(ctx, active); err != nil {
		logger.Error().Err(err).Msg("failed to cache ranked markets")
	}

	s.publishChanges(ctx, active, changed)

	metrics.RecordAggregation(len(active), len(changed))
	logger.Info().
		Int("fetchers", len(fetchers)).
		Int("active", len(active)).
		Int("changed", len(changed)).
		Dur("duration", time.Since(startTime)).
		Msg("market aggregation completed")
	return nil
}

// aggregateMarket runs one source through pricing, reliability and change
// detection and upserts the result
func (s *Service) aggregateMarket(
	ctx context.Context, run *aggregationRun, f fetcher.Fetcher, chain *model.ChainParameters,
) (*model.MarketDocument, bool, error) {
	guid := f.Guid()
	startTime := time.Now()

	snapshot, err := f.Fetch(ctx, chain)
	elapsed := time.Since(startTime)
	if err != nil {
		metrics.RecordFetch(guid, elapsed, metrics.Error)
		return nil, false, err
	}
	if snapshot == nil {
		metrics.RecordFetch(guid, elapsed, metrics.Empty)
		s.recordFailure(ctx, run, guid, reasonEmptySnapshot)
		return nil, false, nil
	}

	previous, err := s.db.GetMarket(ctx, guid)
	if err != nil && !db.IsNotFoundError(err) {
		return nil, false, fmt.Errorf("failed to load previous market document: %w", err)
	}

	now := s.now()
	doc := &model.MarketDocument{
		MarketSnapshot:  *snapshot,
		FetchDurationMs: elapsed.Milliseconds(),
		LastUpdated:     now,
	}
	if previous != nil {
		doc.Reliability = previous.Reliability
		carryTrackingCode(doc, previous)
	}

	if !snapshot.IsActive {
		metrics.RecordFetch(guid, elapsed, metrics.Inactive)
		if record := s.recordFailure(ctx, run, guid, reasonSourceInactive); record != nil {
			doc.Reliability = record.Reliability
		}
		return s.persistMarket(ctx, previous, doc)
	}
	metrics.RecordFetch(guid, elapsed, metrics.Success)

	points := pricing.BuildPricePoints(snapshot, now)
	doc.Pricing = pricing.Summarize(points)
	bulk := pricing.DetectBulkDiscounts(points)
	doc.BulkDiscount = &bulk
	doc.AvailabilityPercent = pricing.AvailabilityPercent(snapshot.Energy)

	var price *float64
	if doc.Pricing != nil {
		effective := doc.Pricing.EffectivePrice
		price = &effective
	}
	availability := doc.AvailabilityPercent
	record, err := s.tracker.RecordSuccess(ctx, guid, &availability, price)
	if err != nil {
		return nil, false, fmt.Errorf("failed to record success: %w", err)
	}
	run.track(guid, record)
	applyRecord(doc, record)

	return s.persistMarket(ctx, previous, doc)
}

func (s *Service) persistMarket(
	ctx context.Context, previous, doc *model.MarketDocument,
) (*model.MarketDocument, bool, error) {
	if previous != nil {
		// rank and best deal are owned by the ranking pass, keep them until it runs
		doc.Rank = previous.Rank
		doc.IsBestDeal = previous.IsBestDeal && doc.IsActive
	}

	result := change.Evaluate(previous, doc)
	if err := s.db.UpsertMarket(ctx, doc); err != nil {
		return nil, false, fmt.Errorf("failed to upsert market: %w", err)
	}

	if result.HasChanged {
		log.Ctx(ctx).Debug().
			Str("guid", doc.Guid).
			Interface("diff", result.Diff).
			Msg("market changed materially")
	}
	return doc, result.HasChanged, nil
}

func carryTrackingCode(doc, previous *model.MarketDocument) {
	if previous.Affiliate == nil || previous.Affiliate.TrackingCode == "" {
		return
	}
	if doc.Affiliate == nil {
		doc.Affiliate = &model.Affiliate{}
	} else {
		affiliate := *doc.Affiliate
		doc.Affiliate = &affiliate
	}
	doc.Affiliate.TrackingCode = previous.Affiliate.TrackingCode
}

// recordFailure returns nil when the tracker could not be updated
func (s *Service) recordFailure(
	ctx context.Context, run *aggregationRun, guid, reason string,
) *model.ReliabilityRecord {
	record, err := s.tracker.RecordFailure(ctx, guid, reason)
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("guid", guid).
			Str("reason", reason).
			Msg("failed to record failure")
		return nil
	}
	run.track(guid, record)
	return record
}

// aggregationRun collects what the concurrent source workers of one run
// report back to the ranking pass
type aggregationRun struct {
	mu          sync.Mutex
	changed     map[string]*model.MarketDocument
	reliability map[string]*model.ReliabilityRecord
}

func newAggregationRun() *aggregationRun {
	return &aggregationRun{
		changed:     make(map[string]*model.MarketDocument),
		reliability: make(map[string]*model.ReliabilityRecord),
	}
}

func (r *aggregationRun) markChanged(doc *model.MarketDocument) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changed[doc.Guid] = doc
}

func (r *aggregationRun) track(guid string, record *model.ReliabilityRecord) {
	if record == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reliability[guid] = record
}

// applyReliability overwrites the stored reliability of active documents with
// the record written by this run, a source that failed after its last success
// is still active but must rank with its degraded score
func (r *aggregationRun) applyReliability(active []*model.MarketDocument) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, doc := range active {
		if record, ok := r.reliability[doc.Guid]; ok {
			applyRecord(doc, record)
		}
	}
}

func applyRecord(doc *model.MarketDocument, record *model.ReliabilityRecord) {
	doc.Reliability = record.Reliability

	sampleSize := 0
	if doc.Pricing != nil {
		sampleSize = doc.Pricing.SampleSize
	}
	doc.AvailabilityConfidence = pricing.AvailabilityConfidence(pricing.ConfidenceInput{
		Reliability: record.Reliability,
		Available:   doc.Energy.Available,
		Total:       doc.Energy.Total,
		SampleSize:  sampleSize,
		SuccessRate: pricing.SuccessRateFromStats(doc.Stats),
	})
}

func (s *Service) rankMarkets(ctx context.Context, active []*model.MarketDocument) error {
	pricing.Rank(active)

	rankings := make([]model.MarketRanking, 0, len(active))
	for _, doc := range active {
		rankings = append(rankings, model.MarketRanking{
			Guid:                   doc.Guid,
			Rank:                   doc.Rank,
			IsBestDeal:             doc.IsBestDeal,
			Reliability:            doc.Reliability,
			AvailabilityPercent:    doc.AvailabilityPercent,
			AvailabilityConfidence: doc.AvailabilityConfidence,
		})
	}
	if err := s.db.UpdateMarketRankings(ctx, rankings); err != nil {
		return fmt.Errorf("failed to update market rankings: %w", err)
	}

	cleared, err := s.db.ClearInactiveBestDeals(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear inactive best deals: %w", err)
	}
	if cleared > 0 {
		log.Ctx(ctx).Info().Int64("cleared", cleared).Msg("cleared best deal flag on inactive markets")
	}
	return nil
}

func (s *Service) savePriceHistory(ctx context.Context, active []*model.MarketDocument) error {
	now := s.now()
	var history []*model.PriceHistory
	for _, doc := range active {
		if doc.Pricing == nil || doc.Pricing.SampleSize < 1 {
			continue
		}
		history = append(history, &model.PriceHistory{
			Guid:                doc.Guid,
			EffectivePrice:      doc.Pricing.EffectivePrice,
			MedianPrice:         doc.Pricing.MedianPrice,
			SampleSize:          doc.Pricing.SampleSize,
			Rank:                doc.Rank,
			AvailabilityPercent: doc.AvailabilityPercent,
			Timestamp:           now,
		})
	}
	if len(history) == 0 {
		return nil
	}
	if err := s.db.SavePriceHistory(ctx, history); err != nil {
		return fmt.Errorf("failed to save price history: %w", err)
	}
	return nil
}

// publishChanges sends one event per changed source, carrying the ranked
// document when the source is still active
func (s *Service) publishChanges(
	ctx context.Context, active []*model.MarketDocument, changed map[string]*model.MarketDocument,
) {
	ranked := make(map[string]*model.MarketDocument, len(active))
	for _, doc := range active {
		ranked[doc.Guid] = doc
	}

	for guid, doc := range changed {
		if r, ok := ranked[guid]; ok {
			doc = r
		}
		if err := s.queueManager.PublishMarketUpdate(ctx, doc); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("guid", guid).Msg("failed to publish market update")
		}
	}
}
