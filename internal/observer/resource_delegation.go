package observer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

const delegationBucket = time.Hour

type ResourceDelegationStore interface {
	IncrementResourceDelegationStats(ctx context.Context, stats *model.ResourceDelegationStats) error
}

// ResourceDelegationObserver accumulates hourly energy delegation volume
type ResourceDelegationObserver struct {
	*Observer[TypeGroupedBatch]

	store ResourceDelegationStore
}

// ResourceDelegationTypes are the contract types the observer subscribes to
var ResourceDelegationTypes = []string{TypeDelegateResource, TypeUnDelegateResource}

func NewResourceDelegationObserver(capacity int, store ResourceDelegationStore) *ResourceDelegationObserver {
	o := &ResourceDelegationObserver{store: store}
	o.Observer = NewBatchObserver("resource-delegation", capacity, o.handle)
	return o
}

func (o *ResourceDelegationObserver) handle(ctx context.Context, batch TypeGroupedBatch) error {
	buckets := make(map[time.Time]*model.ResourceDelegationStats)
	bucketFor := func(ts time.Time) *model.ResourceDelegationStats {
		key := ts.UTC().Truncate(delegationBucket)
		stats, ok := buckets[key]
		if !ok {
			stats = &model.ResourceDelegationStats{Bucket: key}
			buckets[key] = stats
		}
		return stats
	}

	for _, tx := range batch[TypeDelegateResource] {
		if !isEnergy(tx) {
			continue
		}
		stats := bucketFor(tx.Timestamp)
		stats.DelegatedSun += tx.Amount
		stats.DelegationCount++
	}
	for _, tx := range batch[TypeUnDelegateResource] {
		if !isEnergy(tx) {
			continue
		}
		stats := bucketFor(tx.Timestamp)
		stats.ReclaimedSun += tx.Amount
		stats.ReclaimCount++
	}

	var errs []error
	for _, stats := range buckets {
		if err := o.store.IncrementResourceDelegationStats(ctx, stats); err != nil {
			errs = append(errs, fmt.Errorf("bucket %s: %w", stats.Bucket.Format(time.RFC3339), err))
		}
	}
	return errors.Join(errs...)
}

// bandwidth delegations are ignored, an empty resource defaults to energy
func isEnergy(tx *Transaction) bool {
	return tx.Resource == "" || tx.Resource == "ENERGY"
}
