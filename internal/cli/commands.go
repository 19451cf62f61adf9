// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/matfile"
	"github.com/katalvlaran/linalg/matrix"
)

var errMissingB = errors.New("--b is required for this operation")

func (a *app) decomposeCmd() *cobra.Command {
	var data, file string
	var verify bool

	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Factor a matrix into P, L, U and print the row operations.",
		Example: `  lu decompose --data "0,2,1; 1,1,1; 2,4,4" --verify
  lu decompose --file a.lamx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadInput(data, file)
			if err != nil {
				return wrapErr("input", err)
			}
			rows, cols := m.Shape()
			a.log.Printf("decomposing %dx%d", rows, cols)

			res, err := m.LU()
			if err != nil {
				return wrapErr("decompose", err)
			}
			a.log.Printf("rank %d, %d row operations", res.Rank(), len(res.Operations()))

			return a.printer(cmd.OutOrStdout()).lu(m, res, verify)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&data, "data", "d", "", `matrix rows separated by ';', cells by ','`)
	f.StringVarP(&file, "file", "f", "", "matrix file written by 'lu convert'")
	f.BoolVar(&verify, "verify", false, "print P·A, L·U and their max difference")
	cmd.MarkFlagsMutuallyExclusive("data", "file")

	return cmd
}

func (a *app) vectorCmd() *cobra.Command {
	var inA, inB string

	cmd := &cobra.Command{
		Use:       "vector {add|sub|mul|neg}",
		Short:     "Element-wise vector arithmetic.",
		Example:   `  lu vector add --a "1,2,3" --b "4,5,6"`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"add", "sub", "mul", "neg"},
		RunE: func(cmd *cobra.Command, args []string) error {
			va, err := parseVector(inA)
			if err != nil {
				return wrapErr("--a", err)
			}
			p := a.printer(cmd.OutOrStdout())

			if args[0] == "neg" {
				p.vector("-a", va.Neg())
				return nil
			}
			if inB == "" {
				return errMissingB
			}
			vb, err := parseVector(inB)
			if err != nil {
				return wrapErr("--b", err)
			}

			var out *matrix.Vector[float64]
			var sym string
			switch args[0] {
			case "add":
				out, err = va.Add(vb)
				sym = "+"
			case "sub":
				out, err = va.Sub(vb)
				sym = "-"
			case "mul":
				out, err = va.Mul(vb)
				sym = "*"
			}
			if err != nil {
				return wrapErr(args[0], err)
			}
			a.log.Printf("%s: |a|=%g |b|=%g |out|=%g", args[0], va.Norm(), vb.Norm(), out.Norm())
			p.vector("a "+sym+" b", out)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&inA, "a", "", "first operand, comma separated")
	f.StringVar(&inB, "b", "", "second operand, comma separated")
	_ = cmd.MarkFlagRequired("a")

	return cmd
}

func (a *app) solveCmd() *cobra.Command {
	var data, file, rhs string

	cmd := &cobra.Command{
		Use:     "solve",
		Short:   "Solve A·x = b for square, non-singular A.",
		Example: `  lu solve --data "0,2,1; 1,1,1; 2,4,4" --b "7,6,22"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadInput(data, file)
			if err != nil {
				return wrapErr("input", err)
			}
			b, err := parseVector(rhs)
			if err != nil {
				return wrapErr("--b", err)
			}
			res, err := m.LU()
			if err != nil {
				return wrapErr("decompose", err)
			}
			x, err := res.Solve(b.Values())
			if err != nil {
				return wrapErr("solve", err)
			}
			xv, err := matrix.NewVector(x)
			if err != nil {
				return err
			}
			a.log.Printf("solved %d unknowns, |x|=%g", len(x), xv.Norm())
			a.printer(cmd.OutOrStdout()).vector("x", xv)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&data, "data", "d", "", `matrix rows separated by ';', cells by ','`)
	f.StringVarP(&file, "file", "f", "", "matrix file written by 'lu convert'")
	f.StringVar(&rhs, "b", "", "right-hand side, comma separated")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var data, out string

	cmd := &cobra.Command{
		Use:     "convert",
		Short:   "Write a matrix given on the command line to a binary matrix file.",
		Example: `  lu convert --data "1,2;3,4" --out a.lamx`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := parseMatrix(data)
			if err != nil {
				return wrapErr("--data", err)
			}
			if err = matfile.Write(out, m); err != nil {
				return wrapErr("write", err)
			}
			rows, cols := m.Shape()
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %dx%d matrix to %s\n", rows, cols, out)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&data, "data", "d", "", `matrix rows separated by ';', cells by ','`)
	f.StringVarP(&out, "out", "o", "", "output file")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Decompose a tridiagonal matrix and run the vector examples.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			p := a.printer(w)

			fmt.Fprint(w, "Example 1: LU Decomposition\n---------------------------\n")
			A, err := matrix.NewMatrixFromRows([][]float64{
				{2, -1, 0},
				{-1, 2, -1},
				{0, -1, 2},
			})
			if err != nil {
				return err
			}
			res, err := A.LU()
			if err != nil {
				return wrapErr("decompose", err)
			}
			if err = p.lu(A, res, true); err != nil {
				return err
			}

			fmt.Fprint(w, "\nExample 2: Vector Operations\n----------------------------\n")
			v1, err := matrix.NewVector([]float64{1, 2, 3})
			if err != nil {
				return err
			}
			v2, err := matrix.NewVector([]float64{4, 5, 6})
			if err != nil {
				return err
			}
			p.vector("Vector 1", v1)
			p.vector("Vector 2", v2)

			for _, step := range []struct {
				name string
				f    func(*matrix.Vector[float64]) (*matrix.Vector[float64], error)
			}{
				{"Vector 1 + Vector 2", v1.Add},
				{"Vector 1 - Vector 2", v1.Sub},
				{"Vector 1 * Vector 2", v1.Mul},
			} {
				out, err := step.f(v2)
				if err != nil {
					return wrapErr(step.name, err)
				}
				p.vector(step.name, out)
			}
			p.vector("-Vector 1", v1.Neg())

			return nil
		},
	}
}
