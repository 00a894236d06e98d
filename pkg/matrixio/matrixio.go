// Package matrixio produces and consumes the integer cost matrices fed to
// the solver: reading from a text stream, random generation, and the JSON
// shapes used by the HTTP API. The solver itself only ever sees the
// finished [][]int64 grid.
package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/maandree/hungarian-algorithm-n3/pkg/munkres"
)

var (
	// ErrTruncated is returned by [Read] when the stream ends before n·m
	// integers have been read.
	ErrTruncated = errors.New("matrix input ended early")

	// ErrBadDimensions is returned by [Read] and [Random] when n or m is
	// not positive.
	ErrBadDimensions = errors.New("matrix dimensions must be positive")
)

// Read parses n·m whitespace-separated integers in row-major order from r
// and returns them as an n×m matrix. Values beyond the first n·m tokens
// are left unread. Returns [ErrTruncated] when the stream runs out early,
// or a parse error naming the offending token.
func Read(r io.Reader, n, m int) ([][]int64, error) {
	if n < 1 || m < 1 {
		return nil, ErrBadDimensions
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	matrix := make([][]int64, n)
	for i := range matrix {
		matrix[i] = make([]int64, m)
		for j := range matrix[i] {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("%w: got %d of %d values", ErrTruncated, i*m+j, n*m)
			}
			v, err := strconv.ParseInt(sc.Text(), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			matrix[i][j] = v
		}
	}
	return matrix, nil
}

// Random returns an n×m matrix with uniform values in [0, max) drawn from
// rng. A nil rng or non-positive max panics; validate at the call site.
func Random(rng *rand.Rand, n, m int, max int64) ([][]int64, error) {
	if n < 1 || m < 1 {
		return nil, ErrBadDimensions
	}
	matrix := make([][]int64, n)
	for i := range matrix {
		matrix[i] = make([]int64, m)
		for j := range matrix[i] {
			matrix[i][j] = rng.Int63n(max)
		}
	}
	return matrix, nil
}

// Clone returns a deep copy of the matrix.
func Clone(matrix [][]int64) [][]int64 {
	out := make([][]int64, len(matrix))
	for i, row := range matrix {
		out[i] = append([]int64(nil), row...)
	}
	return out
}

// SolveRequest is the JSON body accepted by the HTTP solve endpoint.
type SolveRequest struct {
	Matrix [][]int64 `json:"matrix"`
}

// SolveResult is the JSON response produced by the HTTP solve endpoint.
type SolveResult struct {
	Assignment []munkres.Position `json:"assignment"`
	Cost       int64              `json:"cost"`
	Rows       int                `json:"rows"`
	Cols       int                `json:"cols"`
}
