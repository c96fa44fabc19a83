package eg

import (
	"slices"
	"strings"
)

// Canonicalize sorts the graph into its canonical form in place: every
// child is canonicalized first, then atoms are ordered lexicographically
// and children are ordered by their serialized form. After
// canonicalization, structural equality of two graphs reduces to comparing
// their String renderings.
//
// Canonicalize is idempotent and returns g for chaining.
func (g *Graph) Canonicalize() *Graph {
	for _, c := range g.Children {
		c.Canonicalize()
	}
	slices.Sort(g.Atoms)
	slices.SortFunc(g.Children, func(a, b *Graph) int {
		return strings.Compare(a.String(), b.String())
	})
	return g
}

// Canonical returns a canonicalized deep copy, leaving g untouched.
func (g *Graph) Canonical() *Graph {
	return g.Clone().Canonicalize()
}
