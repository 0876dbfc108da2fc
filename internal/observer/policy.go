package observer

// OverflowPolicy decides what Enqueue does when the queue is at capacity
type OverflowPolicy int

const (
	// DropAll discards every queued item and keeps only the incoming one.
	// It loses more in-flight work than DropNewest and is the default of
	// single transaction observers only.
	DropAll OverflowPolicy = iota
	// DropNewest rejects the incoming item and leaves the queue untouched
	DropNewest
)

func (p OverflowPolicy) String() string {
	switch p {
	case DropAll:
		return "drop_all"
	case DropNewest:
		return "drop_newest"
	default:
		return "unknown"
	}
}

type Kind string

const (
	KindTransaction Kind = "transaction"
	KindBatch       Kind = "batch"
	KindBlock       Kind = "block"
)
