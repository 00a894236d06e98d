package cli

import (
	"strings"
	"testing"

	"github.com/maandree/hungarian-algorithm-n3/pkg/munkres"
)

func TestRenderTablePlain(t *testing.T) {
	matrix := [][]int64{
		{4, 1, 3},
		{2, 0, 5},
	}

	out := renderTable(matrix, nil)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("renderTable produced %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("line %d missing indent: %q", i, line)
		}
	}
	if !strings.Contains(lines[0], "4") || !strings.Contains(lines[1], "0") {
		t.Errorf("cells missing from output:\n%s", out)
	}
	if strings.Contains(out, "^") {
		t.Errorf("plain table should not contain markers:\n%s", out)
	}
}

func TestRenderTableMarksAssignment(t *testing.T) {
	matrix := [][]int64{
		{4, 1, 3},
		{2, 0, 5},
	}
	assignment := []munkres.Position{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
	}

	out := renderTable(matrix, assignment)

	if got := strings.Count(out, "^"); got != len(assignment) {
		t.Errorf("marker count = %d, want %d\n%s", got, len(assignment), out)
	}
	if !strings.Contains(out, "1^") {
		t.Errorf("cell (0,1) not marked:\n%s", out)
	}
	if !strings.Contains(out, "2^") {
		t.Errorf("cell (1,0) not marked:\n%s", out)
	}
}

func TestRenderTableAlignment(t *testing.T) {
	// Mixed widths: every cell should be padded to the widest value.
	matrix := [][]int64{
		{1, 100},
		{-5, 7},
	}

	out := renderTable(matrix, nil)

	if !strings.Contains(out, "  1 ") {
		t.Errorf("narrow cell not padded:\n%s", out)
	}
	if !strings.Contains(out, " -5 ") {
		t.Errorf("negative cell not padded:\n%s", out)
	}
}

func TestCellWidth(t *testing.T) {
	tests := []struct {
		name   string
		matrix [][]int64
		want   int
	}{
		{"SingleDigit", [][]int64{{1, 2}}, 1},
		{"Wide", [][]int64{{1, 1000}}, 4},
		{"NegativeSign", [][]int64{{-12, 3}}, 3},
		{"Empty", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellWidth(tt.matrix); got != tt.want {
				t.Errorf("cellWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}
