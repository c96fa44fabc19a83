package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/livalex/egraph/pkg/eg"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	stats bool // print atom/cut/depth counts
}

// newParseCmd creates the parse command. It canonicalizes bracket notation
// and prints the result.
func newParseCmd() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse <notation>",
		Short: "Canonicalize existential graph notation",
		Long: `Parse bracket notation for an existential graph and print its canonical form.

The argument is notation text, a file path, or "-" for stdin.

Examples:
  egraph parse "(b, a, [c])"       # prints ([c], a, b)
  egraph parse graph.eg            # read from file
  echo "(a)" | egraph parse -      # read from stdin`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())

			text, err := readNotation(args[0])
			if err != nil {
				return err
			}
			g, err := eg.Parse(text)
			if err != nil {
				return err
			}
			logger.Debug("parsed graph", "atoms", g.CountAtoms(), "cuts", g.CountCuts())

			fmt.Println(g)
			if opts.stats {
				printKeyValue("atoms", strconv.Itoa(g.CountAtoms()))
				printKeyValue("cuts", strconv.Itoa(g.CountCuts()))
				printKeyValue("depth", strconv.Itoa(g.Depth()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print graph statistics")
	return cmd
}
