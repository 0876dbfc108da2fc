package reliability

import (
	"context"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

//go:generate mockery --name=Recorder --output=../../tests/mocks --outpkg=mocks --filename=mock_reliability_recorder.go
type Recorder interface {
	RecordSuccess(ctx context.Context, guid string, availability *float64, price *float64) (*model.ReliabilityRecord, error)
	RecordFailure(ctx context.Context, guid string, reason string) (*model.ReliabilityRecord, error)
}
