package eg

import (
	"slices"
	"strings"
)

// Graph represents one enclosure of an existential graph: the sheet of
// assertion when Root is true, a cut otherwise. An enclosure owns the atom
// symbols and nested cuts placed directly inside it; there is no sharing
// between trees.
//
// Cuts occupy combined indices 0..NumChildren()-1 within the enclosure,
// atoms follow at NumChildren()..Size()-1. Queries and rule applications
// address elements with this convention (see Path).
type Graph struct {
	Root     bool     // sheet of assertion, only valid at the top of a tree
	Atoms    []string // propositional symbols directly inside this enclosure
	Children []*Graph // cuts nested one level inside this enclosure
}

// NumChildren returns the number of cuts directly inside the enclosure.
func (g *Graph) NumChildren() int { return len(g.Children) }

// NumAtoms returns the number of atoms directly inside the enclosure.
func (g *Graph) NumAtoms() int { return len(g.Atoms) }

// Size returns the number of elements directly inside the enclosure,
// cuts and atoms combined.
func (g *Graph) Size() int { return len(g.Children) + len(g.Atoms) }

// Clone returns a deep copy of the graph. The copy shares no storage with
// the original, so either tree can be transformed independently.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	out := &Graph{
		Root:  g.Root,
		Atoms: slices.Clone(g.Atoms),
	}
	if g.Children != nil {
		out.Children = make([]*Graph, len(g.Children))
		for i, c := range g.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// String serializes the graph to bracket notation. Children are emitted
// first, then atoms, comma-and-space separated, in stored order. String
// does not re-sort; canonical order must already have been applied for a
// canonical rendering. An empty enclosure emits a bare delimiter pair.
func (g *Graph) String() string {
	left, right := "[", "]"
	if g.Root {
		left, right = "(", ")"
	}

	parts := make([]string, 0, g.Size())
	for _, c := range g.Children {
		parts = append(parts, c.String())
	}
	parts = append(parts, g.Atoms...)

	var b strings.Builder
	b.WriteString(left)
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(right)
	return b.String()
}

// Equal reports structural equality: the two graphs have the same shape
// regardless of the order in which siblings are stored. Equality is decided
// by comparing canonical serializations.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.Canonical().String() == other.Canonical().String()
}

// CountAtoms returns the total number of atoms in the graph, including
// those inside nested cuts.
func (g *Graph) CountAtoms() int {
	n := len(g.Atoms)
	for _, c := range g.Children {
		n += c.CountAtoms()
	}
	return n
}

// CountCuts returns the total number of cuts in the graph. The sheet of
// assertion itself is not counted.
func (g *Graph) CountCuts() int {
	n := len(g.Children)
	for _, c := range g.Children {
		n += c.CountCuts()
	}
	return n
}

// Depth returns the maximum nesting depth of the graph. A graph with no
// cuts has depth 0.
func (g *Graph) Depth() int {
	max := 0
	for _, c := range g.Children {
		if d := c.Depth() + 1; d > max {
			max = d
		}
	}
	return max
}
