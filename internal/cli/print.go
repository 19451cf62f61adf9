// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/linalg/matrix"
)

type printer struct {
	w                io.Writer
	width, precision int
}

// cells is the read surface shared by Matrix and Vector.
type cells[T matrix.Number] interface {
	Shape() (rows, cols int)
	At(row, col int) T
}

// grid writes a titled block, one row per line, followed by a blank line.
func grid[T matrix.Number](p *printer, name string, d cells[T]) {
	fmt.Fprintf(p.w, "%s:\n", name)
	rows, cols := d.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fmt.Fprintf(p.w, "%*.*g ", p.width, p.precision, float64(d.At(i, j)))
		}
		fmt.Fprintln(p.w)
	}
	fmt.Fprintln(p.w)
}

func (p *printer) matrix(name string, m *matrix.Matrix[float64]) { grid[float64](p, name, m) }
func (p *printer) vector(name string, v *matrix.Vector[float64]) { grid[float64](p, name, v) }

func (p *printer) ops(ops []matrix.RowOp[float64]) {
	fmt.Fprintln(p.w, "Row operations performed:")
	for _, op := range ops {
		fmt.Fprintln(p.w, op)
	}
	fmt.Fprintln(p.w)
}

// lu prints the factors, the log and the pivot map; with verify it also
// prints P·A, L·U and their max difference.
func (p *printer) lu(a *matrix.Matrix[float64], res *matrix.LUResult[float64], verify bool) error {
	p.matrix("Original matrix A", a)
	p.matrix("P", res.P())
	p.matrix("L", res.L())
	p.matrix("U", res.U())

	if verify {
		pa, lu, err := matrix.Reconstruct(a, res)
		if err != nil {
			return wrapErr("reconstruct", err)
		}
		worst, err := res.Verify(a)
		if err != nil {
			return wrapErr("verify", err)
		}
		fmt.Fprintln(p.w, "Verifying PA = LU:")
		p.matrix("PA", pa)
		p.matrix("LU", lu)
		fmt.Fprintf(p.w, "Maximum difference between PA and LU: %g\n\n", worst)
	}

	p.ops(res.Operations())
	fmt.Fprintf(p.w, "Pivot columns: %v\nRank: %d\n", res.PivotColumns(), res.Rank())

	return nil
}
