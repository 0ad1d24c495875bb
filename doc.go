// Package matrices is a small linear-algebra engine over generic numeric
// element types, with overflow-checked arithmetic and a CSV command line.
//
// What is inside?
//
//	• Checked scalar arithmetic: integer results that leave the target
//	  type's range fail with an error instead of wrapping
//	• Two matrix kinds: Dense (runtime-sized) and Fixed (dimensions are
//	  types, so shape errors become compile errors)
//	• Products under the rows-equal-columns rule, sequential or on a
//	  bounded worker pool
//	• Inversion by Gauss-Jordan (naive or partial pivoting) and, for fixed
//	  square matrices, by cofactors
//	• Submatrix, transpose, determinant, element access
//
// Packages:
//
//	arith/           — overflow-checked Add, Subtract, Multiply
//	matrix/          — Dense, Fixed, validators and the shared kernels
//	parallel/        — errgroup-backed pool over disjoint output cells
//	csvio/           — delimiter-separated text codec for float64 matrices
//	internal/config/ — YAML + environment configuration of the command
//	cmd/matrices/    — the command line (cobra, zap)
//
// Quick example:
//
//	a := matrix.NewFromValues(3, 2, 1, 2, 3, 4, 5, 6)
//	b := matrix.NewFromValues(2, 3, 1, 0, 1, 0, 1, 1)
//	p, err := a.Mul(b) // 3×3: a.Rows() == b.Cols()
//
//	go install github.com/katalvlaran/matrices/cmd/matrices@latest
package matrices
