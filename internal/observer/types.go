package observer

import (
	"fmt"
	"time"
)

// TRON contract types the bundled observers subscribe to
const (
	TypeTransfer           = "TransferContract"
	TypeTransferAsset      = "TransferAssetContract"
	TypeTriggerSmart       = "TriggerSmartContract"
	TypeDelegateResource   = "DelegateResourceContract"
	TypeUnDelegateResource = "UnDelegateResourceContract"
	TypeFreezeBalanceV2    = "FreezeBalanceV2Contract"
	TypeUnfreezeBalanceV2  = "UnfreezeBalanceV2Contract"
)

const SunPerTrx = 1_000_000

// Transaction is a decoded TRON transaction as published by the block decoder
type Transaction struct {
	TxID        string         `json:"txId"`
	BlockNumber int64          `json:"blockNumber"`
	Timestamp   time.Time      `json:"timestamp"`
	Type        string         `json:"type"`
	From        string         `json:"from"`
	To          string         `json:"to,omitempty"`
	Amount      int64          `json:"amount,omitempty"` // SUN
	Energy      int64          `json:"energy,omitempty"`
	Resource    string         `json:"resource,omitempty"` // ENERGY or BANDWIDTH for resource contracts
	Raw         map[string]any `json:"raw,omitempty"`
}

func (tx *Transaction) String() string {
	if tx == nil {
		return "nil transaction"
	}
	return fmt.Sprintf("tx %s type %s block %d", tx.TxID, tx.Type, tx.BlockNumber)
}

// TypeGroupedBatch groups the transactions of one decoding pass by contract type
type TypeGroupedBatch map[string][]*Transaction

func (b TypeGroupedBatch) Size() int {
	n := 0
	for _, txs := range b {
		n += len(txs)
	}
	return n
}

func (b TypeGroupedBatch) String() string {
	return fmt.Sprintf("batch of %d transactions across %d types", b.Size(), len(b))
}

type BlockData struct {
	Number       int64          `json:"number"`
	Hash         string         `json:"hash"`
	Timestamp    time.Time      `json:"timestamp"`
	Transactions []*Transaction `json:"transactions"`
}

func (b *BlockData) String() string {
	if b == nil {
		return "nil block"
	}
	return fmt.Sprintf("block %d (%d transactions)", b.Number, len(b.Transactions))
}
