package munkres

// findPrime searches for a primed zero with no star in its row - the
// terminus of an augmenting path. It seeds a ZeroSet with every cell that
// is zero-valued and uncovered, then repeatedly pops an arbitrary member:
//
//   - If the popped cell's row holds a star, the row gets covered and the
//     star's column uncovered. Instead of rebuilding the set, only the
//     cells whose covered-state can have changed are fixed up: the zeros in
//     the star's column, the zeros in the now-covered row, and the pivot
//     cell itself. This incremental repair is what keeps each iteration
//     cheap.
//   - Otherwise the popped cell is the terminus and is returned.
//
// When the set runs dry before a terminus is found, ok is false and the
// caller must rebalance the matrix and call findPrime again with the
// covers left as they are.
func (st *state) findPrime() (pos Position, ok bool) {
	zeros := NewZeroSet(st.n * st.m)
	for i, row := range st.cost {
		if st.rowCover[i] {
			continue
		}
		for j, v := range row {
			if v == 0 && !st.colCover[j] {
				zeros.Add(i*st.m + j)
			}
		}
	}

	for {
		idx, found := zeros.Any()
		if !found {
			return Position{}, false
		}
		row, col := idx/st.m, idx%st.m

		st.marks[row][col] = markPrime

		starCol, hasStar := st.starInRow(row)
		if !hasStar {
			return Position{Row: row, Col: col}, true
		}

		st.rowCover[row] = true
		st.colCover[starCol] = false

		for i := range st.cost {
			if i != row && st.cost[i][starCol] == 0 {
				if !st.rowCover[i] && !st.colCover[starCol] {
					zeros.Add(i*st.m + starCol)
				} else {
					zeros.Remove(i*st.m + starCol)
				}
			}
		}
		for j, v := range st.cost[row] {
			if j != starCol && v == 0 {
				if !st.rowCover[row] && !st.colCover[j] {
					zeros.Add(row*st.m + j)
				} else {
					zeros.Remove(row*st.m + j)
				}
			}
		}
		// The starred pivot cell sits on the now-covered row, so it can
		// only ever leave the set here.
		zeros.Remove(row*st.m + starCol)
	}
}
