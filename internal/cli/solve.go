package cli

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/maandree/hungarian-algorithm-n3/pkg/matrixio"
	"github.com/maandree/hungarian-algorithm-n3/pkg/munkres"
	"github.com/maandree/hungarian-algorithm-n3/pkg/render/bipartite"
)

// spinnerCells is the matrix size (in cells) above which the solve shows a
// spinner instead of finishing before the terminal can blink.
const spinnerCells = 62500

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	stdin       bool   // read the matrix from standard input
	max         int64  // exclusive upper bound for random values
	seed        int64  // random seed (0 = derive from current time)
	svg         string // write a bipartite matching diagram to this path
	interactive bool   // browse the result in a scrollable viewer
}

// solveCommand creates the solve command.
//
// Without arguments a random 10×15 matrix is solved; with explicit
// dimensions the matrix is either generated (default) or read from
// standard input (--stdin) as rows·cols whitespace-separated integers in
// row-major order.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [rows cols]",
		Short: "Match agents to tasks at minimal total cost",
		Long: `Solve one assignment problem and print the matrix before and after
matching, with the chosen cells highlighted, followed by the total cost.

Examples:
  hungarian solve                      # random 10×15 matrix, values in [0,64)
  hungarian solve 5 8                  # random 5×8 matrix
  hungarian solve 3 3 --stdin < m.txt  # read 9 integers from stdin
  hungarian solve 4 6 --svg match.svg  # also write a bipartite diagram`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts no arguments or exactly two (rows cols), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "read the matrix from standard input")
	cmd.Flags().Int64Var(&opts.max, "max", defaultMax, "exclusive upper bound for random cell values")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the current time)")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write a bipartite matching diagram to this file")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the solved table in a scrollable viewer")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, args []string, opts solveOpts) error {
	n, m, err := parseDims(args)
	if err != nil {
		return err
	}

	// Config supplies defaults for flags the user left untouched.
	cfg := c.userConfig()
	if !cmd.Flags().Changed("max") {
		opts.max = cfg.Max
	}
	if !cmd.Flags().Changed("seed") {
		opts.seed = cfg.Seed
	}
	if opts.max < 1 {
		return fmt.Errorf("--max must be positive, got %d", opts.max)
	}

	matrix, err := c.buildMatrix(n, m, opts)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(StyleTitle.Render("Input:"))
	fmt.Println()
	fmt.Print(renderTable(matrix, nil))

	var spin *Spinner
	if n*m >= spinnerCells {
		spin = newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Matching %d agents to %d tasks", n, m))
		spin.Start()
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	assignment, err := munkres.Solve(matrix)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Matched %d agents", n))

	fmt.Println()
	fmt.Println(StyleTitle.Render("Output:"))
	fmt.Println()
	fmt.Print(renderTable(matrix, assignment))

	sum := munkres.Cost(matrix, assignment)
	fmt.Println()
	fmt.Println("Sum: " + StyleNumber.Render(strconv.FormatInt(sum, 10)))

	if opts.svg != "" {
		if err := writeSVG(matrix, assignment, opts.svg); err != nil {
			return err
		}
		printFile(opts.svg)
	}

	if opts.interactive {
		return browseTable(matrix, assignment, sum)
	}
	return nil
}

// buildMatrix produces the cost matrix from stdin or the random generator.
func (c *CLI) buildMatrix(n, m int, opts solveOpts) ([][]int64, error) {
	if opts.stdin {
		matrix, err := matrixio.Read(os.Stdin, n, m)
		if err != nil {
			return nil, fmt.Errorf("reading matrix: %w", err)
		}
		return matrix, nil
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c.Logger.Debug("generating matrix", "rows", n, "cols", m, "max", opts.max, "seed", seed)
	return matrixio.Random(rand.New(rand.NewSource(seed)), n, m, opts.max)
}

// writeSVG renders the matching as a bipartite graph SVG.
func writeSVG(matrix [][]int64, assignment []munkres.Position, path string) error {
	svg, err := bipartite.RenderSVG(bipartite.ToDOT(matrix, assignment))
	if err != nil {
		return fmt.Errorf("rendering diagram: %w", err)
	}
	return os.WriteFile(path, svg, 0644)
}

// parseDims interprets the positional arguments. No arguments selects the
// historical default shape of 10×15.
func parseDims(args []string) (n, m int, err error) {
	if len(args) == 0 {
		return defaultRows, defaultCols, nil
	}
	n, err = strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, 0, fmt.Errorf("rows must be a positive integer, got %q", args[0])
	}
	m, err = strconv.Atoi(args[1])
	if err != nil || m < 1 {
		return 0, 0, fmt.Errorf("cols must be a positive integer, got %q", args[1])
	}
	if n > m {
		return 0, 0, fmt.Errorf("rows (%d) must not exceed cols (%d): every agent needs its own task", n, m)
	}
	return n, m, nil
}
