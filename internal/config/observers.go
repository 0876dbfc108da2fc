package config

import "errors"

const (
	defaultTransactionQueueCapacity  = 1000
	defaultBatchQueueCapacity        = 100
	defaultBlockQueueCapacity        = 100
	defaultLargeTransferThresholdTrx = 100_000
)

type ObserversConfig struct {
	TransactionQueueCapacity  int   `mapstructure:"transaction-queue-capacity"`
	BatchQueueCapacity        int   `mapstructure:"batch-queue-capacity"`
	BlockQueueCapacity        int   `mapstructure:"block-queue-capacity"`
	LargeTransferThresholdTrx int64 `mapstructure:"large-transfer-threshold-trx"`
}

func (cfg *ObserversConfig) Validate() error {
	if cfg.TransactionQueueCapacity <= 0 {
		return errors.New("transaction-queue-capacity must be positive")
	}
	if cfg.BatchQueueCapacity <= 0 {
		return errors.New("batch-queue-capacity must be positive")
	}
	if cfg.BlockQueueCapacity <= 0 {
		return errors.New("block-queue-capacity must be positive")
	}
	if cfg.LargeTransferThresholdTrx <= 0 {
		return errors.New("large-transfer-threshold-trx must be positive")
	}
	return nil
}
