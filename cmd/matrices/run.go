// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/matrices/csvio"
	"github.com/katalvlaran/matrices/internal/config"
	"github.com/katalvlaran/matrices/matrix"
	"github.com/katalvlaran/matrices/parallel"
)

var (
	// ErrUnknownOperation is returned for an --operation outside operationNames.
	ErrUnknownOperation = errors.New("matrices: unknown operation")

	// ErrOperandNotAllowed is returned when --operand-matrix is combined with a
	// single-matrix operation.
	ErrOperandNotAllowed = errors.New("matrices: operation takes a single matrix")
)

// operation is one of the commands the tool can run.
type operation int

const (
	opUnknown operation = iota
	opAdd
	opSubtract
	opMultiply
	opTranspose
	opInvert
	opSubmatrix
	opAt
)

// operationNames maps lower-cased --operation values, symbols and words alike.
var operationNames = map[string]operation{
	"+":         opAdd,
	"add":       opAdd,
	"-":         opSubtract,
	"subtract":  opSubtract,
	"*":         opMultiply,
	"multiply":  opMultiply,
	"transpose": opTranspose,
	"invert":    opInvert,
	"submatrix": opSubmatrix,
	"at":        opAt,
}

func (op operation) String() string {
	switch op {
	case opAdd:
		return "add"
	case opSubtract:
		return "subtract"
	case opMultiply:
		return "multiply"
	case opTranspose:
		return "transpose"
	case opInvert:
		return "invert"
	case opSubmatrix:
		return "submatrix"
	case opAt:
		return "at"
	default:
		return "unknown"
	}
}

// parseOperation resolves s case-insensitively.
func parseOperation(s string) (operation, error) {
	if op, ok := operationNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}

	return opUnknown, fmt.Errorf("%q: %w", s, ErrUnknownOperation)
}

// request is one fully resolved invocation.
type request struct {
	Input      string // first matrix file
	Operand    string // optional second matrix file
	ResultFile string
	Op         operation
	Scalar     float64

	// Row and Column are the window size for submatrix and the element
	// position for at; StartRow and StartColumn the submatrix origin.
	Row, Column           int
	StartRow, StartColumn int
}

// execute loads the inputs, applies the operation and writes the result. The
// configured delimiter applies to the inputs and the result alike. No result
// file is created when any step fails.
func execute(ctx context.Context, cfg *config.Config, req request, log *zap.Logger) error {
	log = log.With(zap.Stringer("operation", req.Op))
	delim := csvio.WithDelimiter(cfg.DelimiterRune())

	first, err := load(req.Input, delim, log)
	if err != nil {
		return err
	}

	var result *matrix.Dense[float64]
	if req.Operand != "" {
		second, err := load(req.Operand, delim, log)
		if err != nil {
			return err
		}
		result, err = withMatrix(ctx, cfg, req.Op, first, second, log)
		if err != nil {
			return err
		}
	} else {
		result, err = singleMatrix(cfg, req, first)
		if err != nil {
			return err
		}
	}

	if err = csvio.WriteFile(req.ResultFile, result, delim); err != nil {
		return err
	}
	log.Info("Exported to", zap.String("path", req.ResultFile),
		zap.Int("rows", result.Rows()), zap.Int("cols", result.Cols()))

	return nil
}

func load(path string, delim csvio.Option, log *zap.Logger) (*matrix.Dense[float64], error) {
	m, err := csvio.ReadFile(path, delim)
	if err != nil {
		return nil, err
	}
	log.Info("Loaded from", zap.String("path", path), zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))

	return m, nil
}

// withMatrix combines two loaded matrices.
func withMatrix(ctx context.Context, cfg *config.Config, op operation,
	a, b *matrix.Dense[float64], log *zap.Logger) (*matrix.Dense[float64], error) {
	switch op {
	case opAdd:
		return a.Add(b)
	case opSubtract:
		return a.Sub(b)
	case opMultiply:
		if cfg.Parallel {
			return a.MulParallel(ctx, b, parallel.WithWorkers(cfg.Workers), parallel.WithLogger(log))
		}
		return a.Mul(b)
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrOperandNotAllowed)
	}
}

// singleMatrix applies a one-matrix or matrix-with-scalar operation.
func singleMatrix(cfg *config.Config, req request, m *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	switch req.Op {
	case opSubmatrix:
		return m.Submatrix(req.Row, req.Column, req.StartRow, req.StartColumn)
	case opAt:
		return m.Submatrix(1, 1, req.Row, req.Column)
	case opInvert:
		return m.InverseWith(cfg.PivotPolicy())
	case opTranspose:
		return m.Transpose(), nil
	case opAdd:
		return m.AddScalar(req.Scalar)
	case opSubtract:
		return m.SubScalar(req.Scalar)
	case opMultiply:
		return m.Scale(req.Scalar)
	default:
		return nil, fmt.Errorf("%s: %w", req.Op, ErrUnknownOperation)
	}
}
