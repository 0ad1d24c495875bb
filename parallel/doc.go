// SPDX-License-Identifier: MIT

// Package parallel is the bounded fan-out used by the concurrent matrix
// multiply paths.
//
// A Pool splits the output cells of a rows×cols result into contiguous chunks
// and runs them on at most Workers() goroutines at a time
// (golang.org/x/sync/errgroup with SetLimit). Each cell index belongs to exactly
// one chunk, so a CellFunc that writes only its own destination cell needs no
// locking. ForEachCell returns after every scheduled chunk has finished.
//
// The first error returned by a CellFunc cancels the remaining chunks and is
// returned to the caller; so is cancellation of the caller's context.
package parallel
