package rules

import (
	"github.com/livalex/egraph/pkg/eg"
	"github.com/livalex/egraph/pkg/errors"
)

// Rule identifies one of the supported inference rules.
type Rule string

const (
	// DoubleCut collapses two enclosures nested with nothing between them.
	DoubleCut Rule = "doublecut"
	// Erasure removes an element from a positive (evenly enclosed) context.
	Erasure Rule = "erasure"
	// Deiteration removes a duplicate of content present in an enclosing
	// sibling context.
	Deiteration Rule = "deiteration"
)

// All returns the supported rules in display order.
func All() []Rule {
	return []Rule{DoubleCut, Erasure, Deiteration}
}

// ParseRule maps a rule name to a Rule. Unknown names fail with an
// errors.ErrCodeInvalidRule error.
func ParseRule(name string) (Rule, error) {
	switch Rule(name) {
	case DoubleCut, Erasure, Deiteration:
		return Rule(name), nil
	}
	return "", errors.New(errors.ErrCodeInvalidRule,
		"unknown rule %q (available: doublecut, erasure, deiteration)", name)
}

// Sites returns every legal application site of the rule in g.
func (r Rule) Sites(g *eg.Graph) []eg.Path {
	switch r {
	case DoubleCut:
		return DoubleCutSites(g)
	case Erasure:
		return ErasureSites(g)
	case Deiteration:
		return DeiterationSites(g)
	}
	return nil
}

// Apply performs the rule at the given path, returning a new graph.
func (r Rule) Apply(g *eg.Graph, p eg.Path) (*eg.Graph, error) {
	switch r {
	case DoubleCut:
		return ApplyDoubleCut(g, p)
	case Erasure:
		return ApplyErasure(g, p)
	case Deiteration:
		return ApplyDeiteration(g, p)
	}
	return nil, errors.New(errors.ErrCodeInvalidRule, "unknown rule %q", string(r))
}

// walkParent descends all but the last step of p through nested cuts of
// root and returns the enclosure holding the addressed element. Every
// intermediate step must select a cut.
func walkParent(root *eg.Graph, p eg.Path) (*eg.Graph, error) {
	node := root
	for _, idx := range p[:len(p)-1] {
		if idx < 0 || idx >= node.NumChildren() {
			return nil, errors.New(errors.ErrCodeInvalidPath,
				"path %s does not address a cut at step %d", p, idx)
		}
		node = node.Children[idx]
	}
	return node, nil
}

// removeAt deletes the element addressed by p, rebuilding the tree from a
// deep copy so the input graph is untouched.
func removeAt(g *eg.Graph, p eg.Path) (*eg.Graph, error) {
	if len(p) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPath, "empty path")
	}
	out := g.Clone()
	parent, err := walkParent(out, p)
	if err != nil {
		return nil, err
	}
	last := p[len(p)-1]
	if !parent.Remove(last) {
		return nil, errors.New(errors.ErrCodeInvalidPath,
			"path %s addresses no element (index %d out of range)", p, last)
	}
	return out, nil
}
