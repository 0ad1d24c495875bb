// SPDX-License-Identifier: MIT

package csvio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrices/matrix"
)

// ioErrorf tags an underlying failure with ErrIO and the operation context.
func ioErrorf(what, path string, err error) error {
	return fmt.Errorf("%w: %s %q: %w", ErrIO, what, path, err)
}

// Write serializes m to w, one line per row.
//
// Errors:
//   - the first error returned by w (unwrapped; WriteFile adds ErrIO).
//
// Complexity: O(rows*cols).
func Write(w io.Writer, m matrix.Matrix[float64], opts ...Option) error {
	o := gatherOptions(opts)
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				bw.WriteRune(o.delim)
			}
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}

	// bufio.Writer keeps the first write error and reports it here.
	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes m to it.
//
// Errors:
//   - ErrEmptyPath, ErrIO.
func WriteFile(path string, m matrix.Matrix[float64], opts ...Option) error {
	if path == "" {
		return ErrEmptyPath
	}
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf("create", path, err)
	}
	if err = Write(f, m, opts...); err != nil {
		f.Close()
		return ioErrorf("write", path, err)
	}
	if err = f.Close(); err != nil {
		return ioErrorf("close", path, err)
	}

	return nil
}

// Read parses r into a Dense matrix. Rows equal the number of lines; columns
// equal the widest line's token count.
//
// Errors:
//   - a read error from r (unwrapped; ReadFile adds ErrIO).
//   - matrix.ErrOutOfRange when the text describes more cells than a Dense
//     can index (see matrix.MaxElements).
func Read(r io.Reader, opts ...Option) (*matrix.Dense[float64], error) {
	o := gatherOptions(opts)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows [][]float64
		cols int
	)
	for sc.Scan() {
		row := parseLine(sc.Text(), o.delim)
		cols = max(cols, len(row))
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	m := matrix.NewFromSlice[float64](len(rows), cols, nil)
	for i, row := range rows {
		if err := m.AddRow(i, row); err != nil {
			return nil, fmt.Errorf("%d lines x %d columns: %w", len(rows), cols, err)
		}
	}

	return m, nil
}

// ReadFile opens path, which must be a regular file, and parses it with Read.
//
// Errors:
//   - ErrEmptyPath, ErrIO.
//   - matrix.ErrOutOfRange (see Read).
func ReadFile(path string, opts ...Option) (*matrix.Dense[float64], error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, ioErrorf("stat", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, ioErrorf("open", path, fmt.Errorf("not a regular file (%s)", info.Mode().Type()))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf("open", path, err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		if errors.Is(err, matrix.ErrOutOfRange) {
			return nil, fmt.Errorf("%q: %w", path, err)
		}
		return nil, ioErrorf("read", path, err)
	}

	return m, nil
}

// parseLine splits one line into values. An empty line has no tokens and a
// trailing delimiter does not produce an extra (empty) token.
func parseLine(line string, delim rune) []float64 {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil
	}
	tokens := strings.Split(line, string(delim))
	if tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		// Unparsable tokens keep the zero value.
		if v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64); err == nil {
			out[i] = v
		}
	}

	return out
}
