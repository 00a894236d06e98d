// Package munkres solves the assignment problem: given an n×m cost matrix
// (n rows of agents, m columns of tasks, n ≤ m), find the minimum-weight
// perfect matching that pairs every row with a distinct column.
//
// The implementation is the Kuhn–Munkres ("Hungarian") algorithm in its
// O(k³) form, where k = max(n, m). The inner augmenting-path search is kept
// sub-quadratic per iteration by maintaining an indexed set of the cells
// that are currently zero-valued and uncovered ([ZeroSet]), updated
// incrementally on every cover change instead of re-scanning the matrix.
//
// # Usage
//
//	matrix := [][]int64{
//	    {4, 1, 3},
//	    {2, 0, 5},
//	    {3, 2, 2},
//	}
//	assignment, err := munkres.Solve(matrix)
//	if err != nil {
//	    return err
//	}
//	total := munkres.Cost(matrix, assignment) // minimal over all matchings
//
// Solve operates on a private copy of the matrix, so the caller's values
// are left untouched. Each call owns all of its state; concurrent calls on
// different matrices are safe.
//
// # Limits
//
// Cell values may be any int64, including negative and duplicate values.
// The reduction and rebalancing steps add and subtract row/column minima,
// so inputs whose values approach the int64 boundaries can overflow; see
// [Solve] for the exact contract.
package munkres
