package munkres

// augment grows the matching by one star. Starting from the terminal prime
// found by findPrime, it reconstructs the alternating path: prime, then the
// star in that prime's column (if any), then the prime in that star's row,
// and so on until it reaches a prime whose column holds no star. Every
// visited cell toggles between star and none, netting one extra star. The
// phase then ends: all primes are erased and both covers reset.
func (st *state) augment(prime Position) {
	path := []Position{prime}
	for {
		tail := path[len(path)-1]
		starRow, ok := st.starInCol(tail.Col)
		if !ok {
			break
		}
		path = append(path, Position{Row: starRow, Col: tail.Col})

		primeCol, ok := st.primeInRow(starRow)
		if !ok {
			break // unreachable: a starred row joins the path only after being primed
		}
		path = append(path, Position{Row: starRow, Col: primeCol})
	}

	for _, p := range path {
		if st.marks[p.Row][p.Col] == markStar {
			st.marks[p.Row][p.Col] = markNone
		} else {
			st.marks[p.Row][p.Col] = markStar
		}
	}

	for i := range st.marks {
		for j, m := range st.marks[i] {
			if m == markPrime {
				st.marks[i][j] = markNone
			}
		}
	}
	for i := range st.rowCover {
		st.rowCover[i] = false
	}
	for j := range st.colCover {
		st.colCover[j] = false
	}
}
