// SPDX-License-Identifier: MIT

// Command matrices applies one matrix operation to CSV files.
//
// Usage:
//
//	matrices -I a.csv -M b.csv -O '*' -R product.csv
//	matrices -I a.csv -O invert --pivoting partial
//	matrices -I a.csv -O submatrix --row 2 --column 2 --start-row 1 --start-column 1
//	matrices -I a.csv -O at --row 0 --column 3
//	matrices -I a.csv -O + -S 2.5
//
// With --operand-matrix the operation (+, -, *) combines two matrices;
// without it +, - and * use --scalar-value. On failure the error is printed,
// the exit status is non-zero and no result file is written.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matrices/internal/config"
)

// cli holds flag values for one command instance.
type cli struct {
	configPath string
	verbose    bool
	workers    int
	parallel   bool
	pivoting   string

	req       request
	operation string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	cmd := &cobra.Command{
		Use:   "matrices",
		Short: "Matrix arithmetic on CSV files",
		Long: `matrices loads one or two matrices from delimiter-separated text files,
applies a single operation and writes the result in the same format.

Matrix with matrix (--operand-matrix):
  +  addition        -  subtraction        *  multiplication (rows == operand cols)
Matrix with scalar (--scalar-value):
  +  addition        -  subtraction        *  multiplication
Single matrix:
  transpose, invert, submatrix (--row/--column rows and columns from
  --start-row/--start-column), at (the element at --row, --column)`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := execute(cmd.Context(), c.cfg, c.req, c.logger)
			if err != nil {
				c.logger.Error("operation failed", zap.Error(err))
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&c.req.Input, "input-matrix", "I", "", "input file for the first matrix")
	f.StringVarP(&c.req.Operand, "operand-matrix", "M", "", "input file for the second matrix")
	f.StringVarP(&c.operation, "operation", "O", "", "operation: + - * invert transpose submatrix at")
	f.Float64VarP(&c.req.Scalar, "scalar-value", "S", 1, "scalar for + - * without an operand matrix")
	f.StringVarP(&c.req.ResultFile, "result-file", "R", config.DefaultResultFile, "output file for the result")
	f.IntVar(&c.req.Row, "row", 1, "submatrix row count, or the element row for at")
	f.IntVar(&c.req.Column, "column", 1, "submatrix column count, or the element column for at")
	f.IntVar(&c.req.StartRow, "start-row", 0, "submatrix start row")
	f.IntVar(&c.req.StartColumn, "start-column", 0, "submatrix start column")

	f.StringVar(&c.configPath, "config", "", "YAML configuration file")
	f.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")
	f.IntVar(&c.workers, "workers", 0, "multiply workers (0 = GOMAXPROCS)")
	f.BoolVar(&c.parallel, "parallel", false, "multiply two matrices on the worker pool")
	f.StringVar(&c.pivoting, "pivoting", "", "inversion pivoting: naive or partial")

	_ = cmd.MarkFlagRequired("input-matrix")
	_ = cmd.MarkFlagRequired("operation")

	return cmd
}

// setup merges configuration sources, resolves the operation and builds the
// logger. Precedence: defaults, --config file, MATRICES_* environment, flags.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if c.configPath != "" {
		if err := cfg.LoadFile(c.configPath); err != nil {
			return err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("workers") {
		cfg.Workers = c.workers
	}
	if f.Changed("parallel") {
		cfg.Parallel = c.parallel
	}
	if f.Changed("pivoting") {
		cfg.Pivoting = c.pivoting
	}
	if f.Changed("result-file") {
		cfg.ResultFile = c.req.ResultFile
	}
	if c.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.req.ResultFile = cfg.ResultFile

	op, err := parseOperation(c.operation)
	if err != nil {
		return err
	}
	c.req.Op = op

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.Level())
	if c.logger, err = zc.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.cfg = cfg

	return nil
}
