package lifecycle

import "time"

const (
	defaultSweepInterval   = time.Minute
	defaultSweepBatchLimit = 1000
	defaultSweepWorkers    = 8
	defaultSyncPageSize    = 200
)
