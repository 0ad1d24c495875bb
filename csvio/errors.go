// SPDX-License-Identifier: MIT

package csvio

import "errors"

var (
	// ErrIO wraps a failure to open, read, create or write a matrix file.
	// The underlying os/io error stays reachable through errors.Is/As.
	ErrIO = errors.New("csvio: i/o failure")

	// ErrEmptyPath is returned by ReadFile and WriteFile for an empty path.
	ErrEmptyPath = errors.New("csvio: empty path")
)
