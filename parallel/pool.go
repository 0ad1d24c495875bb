// SPDX-License-Identifier: MIT

package parallel

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CellFunc computes one output cell. It must write only the cell (row, col).
type CellFunc func(row, col int) error

// Pool runs cell computations on a bounded number of goroutines.
// A Pool holds no per-call state and may be shared by concurrent callers.
type Pool struct {
	workers int
	chunk   int
	logger  *zap.Logger
}

// New builds a Pool. Without options it uses GOMAXPROCS workers, automatic
// chunking and a no-op logger.
func New(opts ...Option) *Pool {
	p := &Pool{
		workers: DefaultWorkers,
		chunk:   DefaultChunkSize,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workers = resolveWorkers(p.workers)

	return p
}

// Workers reports the concurrency bound.
func (p *Pool) Workers() int { return p.workers }

// chunkFor returns the number of cells per task for a result of total cells.
func (p *Pool) chunkFor(total int) int {
	if p.chunk > 0 {
		return p.chunk
	}
	size := (total + p.workers*chunksPerWorker - 1) / (p.workers * chunksPerWorker)

	return max(size, 1)
}

// ForEachCell calls fn once for every (row, col) of a rows×cols grid.
//
// Implementation:
//   - Stage 1: split the flat index range [0, rows*cols) into contiguous chunks.
//   - Stage 2: schedule chunks through an errgroup limited to Workers(); Go
//     blocks while the limit is reached, so at most Workers() chunks are live.
//   - Stage 3: wait for every scheduled chunk (join), then report the first
//     error, or the context's error if cancellation stopped scheduling early.
//     Once every chunk has run the call succeeds, whatever the context says.
//
// Complexity: O(rows*cols) calls of fn; O(rows*cols/chunk) goroutines in total,
// never more than Workers() at once.
func (p *Pool) ForEachCell(ctx context.Context, rows, cols int, fn CellFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	total := rows * cols
	if total <= 0 {
		return nil
	}
	chunk := p.chunkFor(total)
	p.logger.Debug("parallel: fan-out",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Int("workers", p.workers),
		zap.Int("chunk", chunk))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	scheduled := 0
	for scheduled < total && gctx.Err() == nil {
		lo, hi := scheduled, min(scheduled+chunk, total)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for idx := lo; idx < hi; idx++ {
				if err := fn(idx/cols, idx%cols); err != nil {
					return err
				}
			}

			return nil
		})
		scheduled = hi
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if scheduled < total {
		// cancelled before the last chunk was scheduled
		return ctx.Err()
	}
	p.logger.Debug("parallel: joined", zap.Int("cells", total))

	return nil
}
