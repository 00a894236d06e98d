package cli

import (
	"fmt"
	"strings"

	"github.com/maandree/hungarian-algorithm-n3/pkg/munkres"
)

// renderTable formats the cost matrix as an aligned table. When assignment
// is non-nil, each matched cell is highlighted and suffixed with "^";
// unmatched cells get a space suffix so the columns keep their alignment.
func renderTable(matrix [][]int64, assignment []munkres.Position) string {
	width := cellWidth(matrix)

	assigned := make(map[munkres.Position]bool, len(assignment))
	for _, p := range assignment {
		assigned[p] = true
	}

	var b strings.Builder
	for i, row := range matrix {
		b.WriteString("    ")
		for j, v := range row {
			cell := fmt.Sprintf("%*d", width, v)
			if assigned[munkres.Position{Row: i, Col: j}] {
				b.WriteString(styleAssigned.Render(cell + "^"))
			} else {
				b.WriteString(cell + " ")
			}
			if j < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cellWidth returns the print width of the widest cell.
func cellWidth(matrix [][]int64) int {
	width := 1
	for _, row := range matrix {
		for _, v := range row {
			if w := len(fmt.Sprintf("%d", v)); w > width {
				width = w
			}
		}
	}
	return width
}
