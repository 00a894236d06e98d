package munkres

// mark is the per-cell state of the marking grid.
type mark int8

const (
	markNone mark = iota
	// markStar tags a zero-valued cell tentatively selected for the current
	// candidate matching. At most one star per row and per column.
	markStar
	// markPrime tags a zero-valued cell on a candidate alternating path.
	// Primes exist only within one search phase and are cleared by augment.
	markPrime
)

// initialStar greedily stars zero cells in row-major order, skipping any
// row or column that already received a star. The result is a maximal
// independent set of zeros - a seed for the search, not the final answer.
func (st *state) initialStar() {
	rowUsed := make([]bool, st.n)
	colUsed := make([]bool, st.m)
	for i, row := range st.cost {
		for j, v := range row {
			if v == 0 && !rowUsed[i] && !colUsed[j] {
				st.marks[i][j] = markStar
				rowUsed[i] = true
				colUsed[j] = true
			}
		}
	}
}

// isDone recomputes the column cover from the stars and reports whether
// every row is matched. Stars are column-unique, so n covered columns is
// equivalent to n starred rows.
func (st *state) isDone() bool {
	for j := range st.colCover {
		st.colCover[j] = false
	}
	count := 0
	for j := 0; j < st.m; j++ {
		for i := 0; i < st.n; i++ {
			if st.marks[i][j] == markStar {
				st.colCover[j] = true
				count++
				break
			}
		}
	}
	return count == st.n
}

// starInRow returns the column of the star in the given row, if any.
func (st *state) starInRow(row int) (int, bool) {
	for j, m := range st.marks[row] {
		if m == markStar {
			return j, true
		}
	}
	return 0, false
}

// starInCol returns the row of the star in the given column, if any.
func (st *state) starInCol(col int) (int, bool) {
	for i := 0; i < st.n; i++ {
		if st.marks[i][col] == markStar {
			return i, true
		}
	}
	return 0, false
}

// primeInRow returns the column of the prime in the given row, if any.
func (st *state) primeInRow(row int) (int, bool) {
	for j, m := range st.marks[row] {
		if m == markPrime {
			return j, true
		}
	}
	return 0, false
}
