package queue

import (
	"context"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

//go:generate mockery --name=QueueInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_queue.go
type QueueInterface interface {
	Ping(ctx context.Context) error
	PublishMarketUpdate(ctx context.Context, doc *model.MarketDocument) error
	PublishLargeTransfer(ctx context.Context, transfer *model.LargeTransfer) error
	ConsumeTransactions(ctx context.Context, d Dispatcher) error
}
