package observer

import "time"

// Stats lives for the process lifetime only, it is never persisted
type Stats struct {
	Name                string     `json:"name"`
	Kind                Kind       `json:"kind"`
	Policy              string     `json:"policy"`
	QueueDepth          int        `json:"queueDepth"`
	Capacity            int        `json:"capacity"`
	IsProcessing        bool       `json:"isProcessing"`
	TotalProcessed      uint64     `json:"totalProcessed"`
	TotalErrors         uint64     `json:"totalErrors"`
	TotalDropped        uint64     `json:"totalDropped"`
	AvgProcessingTimeMs float64    `json:"avgProcessingTimeMs"`
	MinProcessingTimeMs float64    `json:"minProcessingTimeMs"`
	MaxProcessingTimeMs float64    `json:"maxProcessingTimeMs"`
	LastProcessedAt     *time.Time `json:"lastProcessedAt,omitempty"`
	LastErrorAt         *time.Time `json:"lastErrorAt,omitempty"`
	// ErrorRate is errors / (errors + processed)
	ErrorRate float64 `json:"errorRate"`

	AvgBatchSize  float64 `json:"avgBatchSize,omitempty"`
	MaxBatchSize  int     `json:"maxBatchSize,omitempty"`
	AvgTxPerBlock float64 `json:"avgTxPerBlock,omitempty"`
	MaxTxPerBlock int     `json:"maxTxPerBlock,omitempty"`
}
