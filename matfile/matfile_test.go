// SPDX-License-Identifier: MIT

package matfile_test

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matfile"
	"github.com/katalvlaran/linalg/matrix"
)

func TestWriteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.lamx")
	m, err := matrix.NewMatrix(2, 3, []float64{1, -2.5, 0, math.Pi, 1e-300, 7})
	require.NoError(t, err)
	require.NoError(t, m.Apply(matrix.Exchange[float64](0, 1)))

	require.NoError(t, matfile.Write(path, m))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.EqualValues(t, 16+6*8, info.Size())

	got, err := matfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, m.Data(), got.Data())
	require.Equal(t, 2, got.Rows())
	require.Zero(t, got.Log().Len(), "the log is not persisted")
}

func TestLoadDecomposes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.lamx")
	a, err := matrix.NewMatrixFromRows([][]float64{{0, 2}, {1, 1}})
	require.NoError(t, err)
	require.NoError(t, matfile.Write(path, a))

	got, err := matfile.Load(path)
	require.NoError(t, err)
	res, err := got.LU()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 0, 2}, res.U().Data())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, b []byte) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, b, 0o644))
		return p
	}
	head := func(magic string, version, rows, cols byte) []byte {
		return append([]byte(magic), version, 0, 0, 0, rows, 0, 0, 0, cols, 0, 0, 0)
	}

	_, err := matfile.Load(write("short", []byte("LAMX")))
	require.ErrorIs(t, err, matfile.ErrTruncated)

	_, err = matfile.Load(write("magic", head("NOPE", 1, 1, 1)))
	require.ErrorIs(t, err, matfile.ErrBadMagic)

	_, err = matfile.Load(write("version", head("LAMX", 2, 1, 1)))
	require.ErrorIs(t, err, matfile.ErrUnsupportedVersion)

	_, err = matfile.Load(write("body", append(head("LAMX", 1, 2, 2), make([]byte, 3*8)...)))
	require.ErrorIs(t, err, matfile.ErrTruncated)

	_, err = matfile.Load(write("empty", append(head("LAMX", 1, 0, 3), make([]byte, 8)...)))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matfile.Load(write("cols0", head("LAMX", 1, 2, 0)))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matfile.Load(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.ErrorIs(t, matfile.Write(filepath.Join(dir, "nil"), nil), matrix.ErrNilMatrix)
}

// A header claiming 2^32-1 rows and columns must fail the size check
// instead of reaching the allocation.
func TestLoadHugeHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.lamx")
	b := []byte("LAMX")
	b = binary.LittleEndian.AppendUint32(b, matfile.Version)
	b = binary.LittleEndian.AppendUint32(b, math.MaxUint32)
	b = binary.LittleEndian.AppendUint32(b, math.MaxUint32)
	require.Len(t, b, 16)
	require.NoError(t, os.WriteFile(path, b, 0o644))

	var err error
	require.NotPanics(t, func() { _, err = matfile.Load(path) })
	require.ErrorIs(t, err, matfile.ErrTruncated)
}
