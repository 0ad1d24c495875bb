// SPDX-License-Identifier: MIT

package csvio

import "unicode/utf8"

// DefaultDelimiter separates cells within a row.
const DefaultDelimiter = ','

const panicBadDelimiter = "csvio: WithDelimiter: delimiter must be a valid rune other than '\\r' or '\\n'"

// maxLineBytes bounds a single line on read; bufio.Scanner's default of 64 KiB
// is too small for wide matrices.
const maxLineBytes = 16 << 20

// Option configures Read and Write.
type Option func(*options)

type options struct {
	delim rune
}

// WithDelimiter replaces the ',' separator, e.g. '\t' or ';'.
// It panics on line terminators and invalid runes.
func WithDelimiter(r rune) Option {
	if r == '\n' || r == '\r' || r == utf8.RuneError || !utf8.ValidRune(r) {
		panic(panicBadDelimiter)
	}

	return func(o *options) { o.delim = r }
}

func gatherOptions(opts []Option) options {
	o := options{delim: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
