package munkres

import "errors"

var (
	// ErrEmptyMatrix is returned by [Solve] when the matrix has no rows or
	// no columns. At least one agent and one task are required.
	ErrEmptyMatrix = errors.New("matrix must have at least one row and one column")

	// ErrRowsExceedCols is returned by [Solve] when the matrix has more rows
	// than columns. A perfect matching needs a distinct column for every row,
	// so n ≤ m is a precondition; transpose the matrix to match the wide side.
	ErrRowsExceedCols = errors.New("matrix must not have more rows than columns")

	// ErrRaggedMatrix is returned by [Solve] when the rows have differing
	// lengths. The matrix must be rectangular.
	ErrRaggedMatrix = errors.New("matrix rows must all have the same length")

	// ErrRebalanceStuck is returned by [Solve] when a rebalance step fails to
	// expose a new uncovered zero. This cannot happen for in-range inputs and
	// indicates integer overflow in the cost values; it is surfaced instead
	// of looping forever.
	ErrRebalanceStuck = errors.New("rebalance produced no new zero (cost overflow?)")
)
