package observer

import (
	"context"
	"fmt"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

type LargeTransferStore interface {
	SaveLargeTransfer(ctx context.Context, transfer *model.LargeTransfer) error
}

type TransferPublisher interface {
	PublishLargeTransfer(ctx context.Context, transfer *model.LargeTransfer) error
}

// LargeTransferObserver records TRX transfers at or above a threshold and
// announces them on the broker
type LargeTransferObserver struct {
	*Observer[*Transaction]

	store        LargeTransferStore
	publisher    TransferPublisher
	thresholdSun int64
}

func NewLargeTransferObserver(
	capacity int, thresholdTrx int64, store LargeTransferStore, publisher TransferPublisher,
) *LargeTransferObserver {
	o := &LargeTransferObserver{
		store:        store,
		publisher:    publisher,
		thresholdSun: thresholdTrx * SunPerTrx,
	}
	o.Observer = NewTransactionObserver("large-transfer", capacity, o.handle)
	return o
}

func (o *LargeTransferObserver) handle(ctx context.Context, tx *Transaction) error {
	if tx.Type != TypeTransfer || tx.Amount < o.thresholdSun {
		return nil
	}

	transfer := &model.LargeTransfer{
		TxID:        tx.TxID,
		BlockNumber: tx.BlockNumber,
		From:        tx.From,
		To:          tx.To,
		AmountSun:   tx.Amount,
		Timestamp:   tx.Timestamp,
	}

	if err := o.store.SaveLargeTransfer(ctx, transfer); err != nil {
		return fmt.Errorf("failed to save large transfer: %w", err)
	}
	if o.publisher == nil {
		return nil
	}
	if err := o.publisher.PublishLargeTransfer(ctx, transfer); err != nil {
		return fmt.Errorf("failed to publish large transfer: %w", err)
	}
	return nil
}
