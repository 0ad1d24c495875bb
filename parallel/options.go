// SPDX-License-Identifier: MIT

package parallel

import (
	"runtime"

	"go.uber.org/zap"
)

// Defaults.
const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
	DefaultWorkers = 0

	// DefaultChunkSize selects an automatic chunk size (see Pool.chunkFor).
	DefaultChunkSize = 0

	// chunksPerWorker is the target number of chunks each worker receives when
	// the chunk size is automatic.
	chunksPerWorker = 4
)

const (
	panicWorkersNegative = "parallel: WithWorkers: n must be >= 0"
	panicChunkNegative   = "parallel: WithChunkSize: n must be >= 0"
)

// Option configures a Pool. Constructors panic only on nonsensical values.
type Option func(*Pool)

// WithWorkers bounds the number of concurrently running chunks.
// n == 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(p *Pool) { p.workers = n }
}

// WithChunkSize fixes the number of cells handled by one task.
// n == 0 selects an automatic size.
func WithChunkSize(n int) Option {
	if n < 0 {
		panic(panicChunkNegative)
	}

	return func(p *Pool) { p.chunk = n }
}

// WithLogger attaches a logger for debug-level scheduling events.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// resolveWorkers maps DefaultWorkers onto the hardware parallelism.
func resolveWorkers(n int) int {
	if n == DefaultWorkers {
		return runtime.GOMAXPROCS(0)
	}

	return n
}
