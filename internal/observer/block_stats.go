package observer

import (
	"context"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

type BlockStatsStore interface {
	UpsertBlockStats(ctx context.Context, stats *model.BlockStats) error
}

type BlockStatsObserver struct {
	*Observer[*BlockData]

	store BlockStatsStore
}

func NewBlockStatsObserver(capacity int, store BlockStatsStore) *BlockStatsObserver {
	o := &BlockStatsObserver{store: store}
	o.Observer = NewBlockObserver("block-stats", capacity, o.handle)
	return o
}

func (o *BlockStatsObserver) handle(ctx context.Context, block *BlockData) error {
	return o.store.UpsertBlockStats(ctx, SummarizeBlock(block))
}

func SummarizeBlock(block *BlockData) *model.BlockStats {
	stats := &model.BlockStats{
		Number:        block.Number,
		Hash:          block.Hash,
		Timestamp:     block.Timestamp,
		TxCount:       len(block.Transactions),
		TxCountByType: make(map[string]int),
	}

	for _, tx := range block.Transactions {
		stats.TxCountByType[tx.Type]++
		stats.TotalEnergy += tx.Energy
		if tx.Type == TypeTransfer {
			stats.TransferSun += tx.Amount
		}
	}
	return stats
}
