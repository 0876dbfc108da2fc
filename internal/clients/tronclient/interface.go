package tronclient

import (
	"context"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

//go:generate mockery --name=TronInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_tron_client.go
type TronInterface interface {
	GetChainParameters(ctx context.Context) (*model.ChainParameters, error)
}
