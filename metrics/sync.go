package metrics

import "sync/atomic"

type SyncMetrics struct {
	FeedRows        atomic.Int32
	StocksSubmitted atomic.Int32
	PricesSubmitted atomic.Int32
	FailedBatches   atomic.Int32
}
