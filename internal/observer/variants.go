package observer

const (
	DefaultTransactionCapacity = 1000
	DefaultBatchCapacity       = 100
	DefaultBlockCapacity       = 100
)

// NewTransactionObserver handles one transaction per queue slot and resets
// the whole queue on overflow
func NewTransactionObserver(name string, capacity int, handler Handler[*Transaction]) *Observer[*Transaction] {
	if capacity <= 0 {
		capacity = DefaultTransactionCapacity
	}
	return newObserver(name, KindTransaction, capacity, DropAll, handler)
}

// NewBatchObserver handles one type grouped batch per slot and rejects new
// batches on overflow
func NewBatchObserver(name string, capacity int, handler Handler[TypeGroupedBatch]) *Observer[TypeGroupedBatch] {
	if capacity <= 0 {
		capacity = DefaultBatchCapacity
	}
	o := newObserver(name, KindBatch, capacity, DropNewest, handler)
	o.unitSize = func(b TypeGroupedBatch) int { return b.Size() }
	return o
}

func NewBlockObserver(name string, capacity int, handler Handler[*BlockData]) *Observer[*BlockData] {
	if capacity <= 0 {
		capacity = DefaultBlockCapacity
	}
	o := newObserver(name, KindBlock, capacity, DropNewest, handler)
	o.unitSize = func(b *BlockData) int {
		if b == nil {
			return 0
		}
		return len(b.Transactions)
	}
	return o
}

// WithPolicy overrides the default overflow policy of a variant
func (o *Observer[T]) WithPolicy(policy OverflowPolicy) *Observer[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.policy = policy
	return o
}
