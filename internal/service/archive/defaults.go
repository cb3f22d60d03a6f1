package archive

import "time"

const (
	defaultWorkerCount = 8
	defaultChunkSize   = 1000

	batcherCapacity      = 500
	batcherFlushInterval = 5 * time.Second
	batcherRPS           = 20

	// maxLineSize bounds one hex line, enough for a 4 MB transaction.
	maxLineSize = 8 << 20
)
