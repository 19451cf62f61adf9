// SPDX-License-Identifier: MIT

// Package matfile stores dense float64 matrices in a small binary format.
//
// Layout (little-endian):
//
//	offset 0   magic   "LAMX"
//	offset 4   uint32  version (1)
//	offset 8   uint32  rows
//	offset 12  uint32  cols
//	offset 16  rows*cols float64, row-major
//
// Load maps the file read-only and decodes it into a fresh matrix, so the
// mapping never outlives the call.
package matfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	// Version is the only layout Load understands.
	Version uint32 = 1

	headSize = 16
	elemSize = 8
)

var magic = [4]byte{'L', 'A', 'M', 'X'}

var (
	// ErrBadMagic is returned when the first four bytes are not "LAMX".
	ErrBadMagic = errors.New("matfile: bad magic")

	// ErrUnsupportedVersion is returned for any header version other than Version.
	ErrUnsupportedVersion = errors.New("matfile: unsupported version")

	// ErrTruncated is returned when the file is shorter than its header promises.
	ErrTruncated = errors.New("matfile: truncated file")
)

// Write creates or truncates path and stores m in it.
func Write(path string, m *matrix.Matrix[float64]) (err error) {
	if m == nil {
		return fmt.Errorf("matfile: write %s: %w", path, matrix.ErrNilMatrix)
	}

	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	head := make([]byte, headSize)
	copy(head[:4], magic[:])
	binary.LittleEndian.PutUint32(head[4:], Version)
	binary.LittleEndian.PutUint32(head[8:], uint32(m.Rows()))
	binary.LittleEndian.PutUint32(head[12:], uint32(m.Cols()))
	if _, err = w.Write(head); err != nil {
		return
	}

	var buf [elemSize]byte
	for i, n := 0, m.Len(); i < n; i++ {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(m.AtIndex(i)))
		if _, err = w.Write(buf[:]); err != nil {
			return
		}
	}

	return w.Flush()
}

// Load reads a matrix previously stored by Write. The returned matrix has an
// empty row-operation log.
func Load(path string) (m *matrix.Matrix[float64], err error) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.Size() < headSize {
		return nil, fmt.Errorf("%s: %d bytes: %w", path, info.Size(), ErrTruncated)
	}

	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return
	}
	defer func() {
		if uerr := data.Unmap(); err == nil {
			err = uerr
		}
	}()

	return decode(path, data)
}

func decode(path string, b []byte) (*matrix.Matrix[float64], error) {
	if [4]byte(b[:4]) != magic {
		return nil, fmt.Errorf("%s: %q: %w", path, b[:4], ErrBadMagic)
	}
	if v := binary.LittleEndian.Uint32(b[4:]); v != Version {
		return nil, fmt.Errorf("%s: version %d: %w", path, v, ErrUnsupportedVersion)
	}
	rows := binary.LittleEndian.Uint32(b[8:])
	cols := binary.LittleEndian.Uint32(b[12:])
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", path, rows, cols, matrix.ErrInvalidDimensions)
	}
	// Both factors fit in 32 bits, so the uint64 product cannot overflow.
	count := uint64(rows) * uint64(cols)
	if have := uint64(len(b)-headSize) / elemSize; count > have {
		return nil, fmt.Errorf("%s: %dx%d needs %d elements, have %d: %w", path, rows, cols, count, have, ErrTruncated)
	}

	vals := make([]float64, count)
	body := b[headSize:]
	for i := range vals {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(body[i*elemSize:]))
	}

	return matrix.NewMatrix(int(rows), int(cols), vals)
}
