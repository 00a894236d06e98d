package munkres

// reduceRows subtracts each row's minimum from every cell in that row,
// leaving at least one zero per row. Shifting a whole row by a constant
// does not change which assignment is optimal, only the total cost, so
// this is a safe first step. Applying it twice is a no-op.
func (st *state) reduceRows() {
	for _, row := range st.cost {
		min := row[0]
		for _, v := range row[1:] {
			if v < min {
				min = v
			}
		}
		for j := range row {
			row[j] -= min
		}
	}
}

// rebalance finds the minimum value among cells whose row and column are
// both uncovered, then adds it to every cell in a covered row and subtracts
// it from every cell in an uncovered column. Zeros on covered lines are
// preserved and at least one previously-nonzero uncovered cell becomes
// zero, which is what guarantees the search loop makes progress.
//
// rebalance is only called when the search found no uncovered zero, so the
// minimum must be strictly positive. Anything else means the cost values
// have overflowed and the solve cannot terminate; that is reported as
// ErrRebalanceStuck rather than retried.
func (st *state) rebalance() error {
	var min int64
	found := false
	for i, row := range st.cost {
		if st.rowCover[i] {
			continue
		}
		for j, v := range row {
			if !st.colCover[j] && (!found || v < min) {
				min = v
				found = true
			}
		}
	}
	if !found || min <= 0 {
		return ErrRebalanceStuck
	}

	for i, row := range st.cost {
		for j := range row {
			if st.rowCover[i] {
				row[j] += min
			}
			if !st.colCover[j] {
				row[j] -= min
			}
		}
	}
	return nil
}
