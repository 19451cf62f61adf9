// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matfile"
	"github.com/katalvlaran/linalg/matrix"
)

var errNoInput = errors.New("one of --data or --file is required")

// parseRows splits "1,2;3,4" into rows of floats. Blank rows are ignored.
func parseRows(s string) ([][]float64, error) {
	var rows [][]float64
	for _, line := range strings.Split(s, ";") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cells := strings.Split(line, ",")
		row := make([]float64, len(cells))
		for j, cell := range cells {
			x, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, wrapErr("row "+strconv.Itoa(len(rows)), err)
			}
			row[j] = x
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseMatrix(s string) (*matrix.Matrix[float64], error) {
	rows, err := parseRows(s)
	if err != nil {
		return nil, err
	}

	return matrix.NewMatrixFromRows(rows)
}

// parseVector accepts a single comma-separated row.
func parseVector(s string) (*matrix.Vector[float64], error) {
	rows, err := parseRows(strings.ReplaceAll(s, ";", ","))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, matrix.ErrInvalidDimensions
	}

	return matrix.NewVector(rows[0])
}

// loadInput resolves the --data / --file pair, preferring --data.
func loadInput(data, file string) (*matrix.Matrix[float64], error) {
	switch {
	case data != "":
		return parseMatrix(data)
	case file != "":
		return matfile.Load(file)
	default:
		return nil, errNoInput
	}
}
