package munkres

// Position identifies a single matrix cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// state carries everything one solve owns: the working copy of the cost
// matrix, the marking grid and the two cover vectors. It is created per
// call and discarded at the end, so Solve has no shared mutable state.
type state struct {
	n, m     int
	cost     [][]int64
	marks    [][]mark
	rowCover []bool
	colCover []bool
}

func newState(matrix [][]int64, n, m int) *state {
	st := &state{
		n:        n,
		m:        m,
		cost:     make([][]int64, n),
		marks:    make([][]mark, n),
		rowCover: make([]bool, n),
		colCover: make([]bool, m),
	}
	for i, row := range matrix {
		st.cost[i] = make([]int64, m)
		copy(st.cost[i], row)
		st.marks[i] = make([]mark, m)
	}
	return st
}

// Solve computes a minimum-weight perfect matching for the given cost
// matrix and returns one Position per row, in row order. The returned
// positions are row-unique and column-unique, and the sum of the matched
// cells is minimal over all such matchings. When several matchings share
// the minimal cost, which one is returned is unspecified.
//
// The matrix must be rectangular with at least one row, at least one
// column, and no more rows than columns; otherwise [ErrEmptyMatrix],
// [ErrRaggedMatrix] or [ErrRowsExceedCols] is returned. The input is
// copied, not modified.
//
// Values are signed 64-bit integers. Intermediate steps add and subtract
// row and column minima, so inputs whose spread approaches the int64 range
// can overflow; such runs fail with [ErrRebalanceStuck] instead of looping.
func Solve(matrix [][]int64) ([]Position, error) {
	n, m, err := shape(matrix)
	if err != nil {
		return nil, err
	}

	st := newState(matrix, n, m)
	st.reduceRows()
	st.initialStar()

	for !st.isDone() {
		prime, found := st.findPrime()
		for !found {
			if err := st.rebalance(); err != nil {
				return nil, err
			}
			prime, found = st.findPrime()
		}
		st.augment(prime)
	}

	return st.assignment(), nil
}

// Cost sums the matrix cells selected by the assignment. Calling it with
// the original (unreduced) matrix and the result of [Solve] yields the
// total cost of the matching.
func Cost(matrix [][]int64, assignment []Position) int64 {
	var sum int64
	for _, p := range assignment {
		sum += matrix[p.Row][p.Col]
	}
	return sum
}

// shape validates the matrix dimensions and returns them.
func shape(matrix [][]int64) (n, m int, err error) {
	n = len(matrix)
	if n == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	m = len(matrix[0])
	if m == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	for _, row := range matrix[1:] {
		if len(row) != m {
			return 0, 0, ErrRaggedMatrix
		}
	}
	if n > m {
		return 0, 0, ErrRowsExceedCols
	}
	return n, m, nil
}

// assignment reads the final matching off the marking grid, one starred
// column per row.
func (st *state) assignment() []Position {
	out := make([]Position, st.n)
	for i := range st.marks {
		for j, m := range st.marks[i] {
			if m == markStar {
				out[i] = Position{Row: i, Col: j}
				break
			}
		}
	}
	return out
}
