package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livalex/egraph/pkg/eg"
	"github.com/livalex/egraph/pkg/eg/rules"
)

// newSitesCmd creates the sites command. It lists every legal application
// site of an inference rule, with the notation that applying there yields.
func newSitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sites <rule> <notation>",
		Short: "List legal application sites of an inference rule",
		Long: `List every site where an inference rule may be applied to a graph.

Rules: doublecut, erasure, deiteration.
Each site is a dotted path addressing an element of the graph; cuts occupy
low indices at each level, atoms follow.

Examples:
  egraph sites doublecut "(a, [b], [[c]])"
  egraph sites erasure "(a, [b], c)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			rule, err := rules.ParseRule(args[0])
			if err != nil {
				return err
			}
			text, err := readNotation(args[1])
			if err != nil {
				return err
			}
			g, err := eg.Parse(text)
			if err != nil {
				return err
			}

			sites := rule.Sites(g)
			if len(sites) == 0 {
				printInfo("no %s sites in %s", rule, g)
				return nil
			}

			printInfo("%d %s site(s) in %s", len(sites), rule, g)
			for _, p := range sites {
				result, err := rule.Apply(g, p)
				if err != nil {
					return err
				}
				printSite(p.String(), result.Canonicalize().String())
			}
			return nil
		},
	}
}

// newApplyCmd creates the apply command. It applies an inference rule at
// one site and prints the resulting canonical notation.
func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <rule> <site> <notation>",
		Short: "Apply an inference rule at a site",
		Long: `Apply an inference rule at the site addressed by a dotted path.

The site must come from the same graph's "egraph sites" output; rule
preconditions are checked where the path shape implies them.

Examples:
  egraph apply doublecut 0 "(a, [b], [[c]])"   # prints ([b], a, c)
  egraph apply erasure 2 "(a, [b], c)"`,
		Args: cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			rule, err := rules.ParseRule(args[0])
			if err != nil {
				return err
			}
			path, err := eg.ParsePath(args[1])
			if err != nil {
				return err
			}
			text, err := readNotation(args[2])
			if err != nil {
				return err
			}
			g, err := eg.Parse(text)
			if err != nil {
				return err
			}

			result, err := rule.Apply(g, path)
			if err != nil {
				return err
			}
			fmt.Println(result.Canonicalize())
			return nil
		},
	}
}
