package matrixio

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n, m  int
		want  [][]int64
	}{
		{
			name:  "SingleCell",
			input: "7",
			n:     1, m: 1,
			want: [][]int64{{7}},
		},
		{
			name:  "RowMajor",
			input: "4 1 3\n2 0 5\n",
			n:     2, m: 3,
			want: [][]int64{{4, 1, 3}, {2, 0, 5}},
		},
		{
			name:  "NegativeAndExtraWhitespace",
			input: "  -4\t0\n\n-3   9 ",
			n:     2, m: 2,
			want: [][]int64{{-4, 0}, {-3, 9}},
		},
		{
			name:  "TrailingValuesIgnored",
			input: "1 2 3 4 5 6",
			n:     2, m: 2,
			want: [][]int64{{1, 2}, {3, 4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input), tt.n, tt.m)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			for i := range tt.want {
				for j := range tt.want[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("cell (%d,%d) = %d, want %d", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read(strings.NewReader("1 2 3"), 2, 2); !errors.Is(err, ErrTruncated) {
		t.Errorf("truncated input: err = %v, want ErrTruncated", err)
	}
	if _, err := Read(strings.NewReader("1 x 3 4"), 2, 2); err == nil {
		t.Error("garbage token: err = nil, want parse error")
	}
	if _, err := Read(strings.NewReader("1"), 0, 3); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("zero rows: err = %v, want ErrBadDimensions", err)
	}
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	matrix, err := Random(rng, 10, 15, 64)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if len(matrix) != 10 || len(matrix[0]) != 15 {
		t.Fatalf("shape = %dx%d, want 10x15", len(matrix), len(matrix[0]))
	}
	for i, row := range matrix {
		for j, v := range row {
			if v < 0 || v >= 64 {
				t.Errorf("cell (%d,%d) = %d, outside [0,64)", i, j, v)
			}
		}
	}

	if _, err := Random(rng, 0, 5, 64); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("zero rows: err = %v, want ErrBadDimensions", err)
	}
}

func TestClone(t *testing.T) {
	matrix := [][]int64{{1, 2}, {3, 4}}
	clone := Clone(matrix)
	clone[0][0] = 99
	if matrix[0][0] != 1 {
		t.Error("Clone shares storage with the original")
	}
}
