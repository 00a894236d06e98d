// Package pkg provides the core libraries for the hungarian assignment solver.
//
// # Overview
//
// The solver computes minimum-cost assignments between agents and tasks using
// the Kuhn-Munkres algorithm in O(n^3) time. The pkg directory is organized
// into five main areas:
//
//  1. [munkres] - The assignment algorithm itself (matrix reduction,
//     zero tracking, augmenting paths)
//  2. [matrixio] - Cost matrix parsing, generation, and wire types
//  3. [render/bipartite] - Assignment visualization via Graphviz
//  4. [cache] and [history] - Infrastructure for the HTTP server
//     (result caching, solve history)
//  5. [observability] - Pluggable instrumentation hooks
//
// # Architecture
//
// The typical data flow:
//
//	Cost matrix (stdin, random, or HTTP request body)
//	         ↓
//	    [matrixio] package (parse and validate input)
//	         ↓
//	    [munkres] package (solve the assignment problem)
//	         ↓
//	    Table, JSON, or SVG output
//
// # Quick Start
//
// Solve an assignment problem:
//
//	import "github.com/maandree/hungarian-algorithm-n3/pkg/munkres"
//
//	cost := [][]int64{
//	    {4, 1, 3},
//	    {2, 0, 5},
//	    {3, 2, 2},
//	}
//	assignment, err := munkres.Solve(cost)
//	if err != nil {
//	    // matrix was empty, ragged, or had more rows than columns
//	}
//	total := munkres.Cost(cost, assignment)
//
// Render the result as a bipartite graph:
//
//	dot := bipartite.ToDOT(cost, assignment)
//	svg, err := bipartite.RenderSVG(dot)
//
// # Main Packages
//
// [munkres] - The Kuhn-Munkres (Hungarian) algorithm over int64 cost
// matrices. Supports rectangular matrices with rows <= columns and
// arbitrary (including negative) cell values.
//
// [matrixio] - Whitespace-separated matrix parsing, seeded random matrix
// generation, and the JSON request/response types shared by the CLI and
// the HTTP server.
//
// [render/bipartite] - DOT generation and Graphviz SVG rendering for
// solved assignments.
//
// [cache] - Solve-result caching with file, Redis, and no-op backends.
//
// [history] - Solve history persistence with MongoDB and no-op backends.
//
// [observability] - Hook interfaces for instrumenting solves, cache
// traffic, and HTTP requests without coupling to a metrics library.
//
// [buildinfo] - Version metadata derived from build info.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/munkres/...  # Specific package
//	go test -run Example       # Examples only
//
// [munkres]: https://pkg.go.dev/github.com/maandree/hungarian-algorithm-n3/pkg/munkres
// [matrixio]: https://pkg.go.dev/github.com/maandree/hungarian-algorithm-n3/pkg/matrixio
// [render/bipartite]: https://pkg.go.dev/github.com/maandree/hungarian-algorithm-n3/pkg/render/bipartite
// [cache]: https://pkg.go.dev/github.com/maandree/hungarian-algorithm-n3/pkg/cache
// [history]: https://pkg.go.dev/github.com/maandree/hungarian-algorithm-n3/pkg/history
// [observability]: https://pkg.go.dev/github.com/maandree/hungarian-algorithm-n3/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/maandree/hungarian-algorithm-n3/pkg/buildinfo
package pkg
