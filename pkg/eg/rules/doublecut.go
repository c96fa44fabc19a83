package rules

import (
	"github.com/livalex/egraph/pkg/eg"
	"github.com/livalex/egraph/pkg/errors"
)

// DoubleCutSites returns a path to every cut whose entire content is
// exactly one bare cut. Such a pair of enclosures can be collapsed without
// changing the graph's meaning.
func DoubleCutSites(g *eg.Graph) []eg.Path {
	var sites []eg.Path
	for i, c := range g.Children {
		if c.NumChildren() == 1 && c.NumAtoms() == 0 {
			sites = append(sites, eg.Path{i})
		}
		sites = append(sites, prefix(i, DoubleCutSites(c))...)
	}
	return sites
}

// ApplyDoubleCut collapses the double cut addressed by p: both enclosing
// levels are removed and the innermost cut's contents are spliced into the
// surrounding enclosure at that position. The input graph is not modified.
//
// Fails with an errors.ErrCodeInvalidPath error when p does not address a
// cut shaped as a double cut.
func ApplyDoubleCut(g *eg.Graph, p eg.Path) (*eg.Graph, error) {
	if len(p) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPath, "empty path")
	}
	out := g.Clone()
	parent, err := walkParent(out, p)
	if err != nil {
		return nil, err
	}

	i := p[len(p)-1]
	if i < 0 || i >= parent.NumChildren() {
		return nil, errors.New(errors.ErrCodeInvalidPath,
			"path %s does not address a cut (index %d out of range)", p, i)
	}
	target := parent.Children[i]
	if target.NumChildren() != 1 || target.NumAtoms() != 0 {
		return nil, errors.New(errors.ErrCodeInvalidPath,
			"cut at %s is not a double cut", p)
	}

	inner := target.Children[0]
	children := make([]*eg.Graph, 0, parent.NumChildren()-1+inner.NumChildren())
	children = append(children, parent.Children[:i]...)
	children = append(children, inner.Children...)
	children = append(children, parent.Children[i+1:]...)
	parent.Children = children
	parent.Atoms = append(parent.Atoms, inner.Atoms...)

	return out, nil
}

// prefix prepends idx to every sub-path.
func prefix(idx int, subs []eg.Path) []eg.Path {
	out := make([]eg.Path, len(subs))
	for i, sub := range subs {
		p := make(eg.Path, 0, len(sub)+1)
		p = append(p, idx)
		out[i] = append(p, sub...)
	}
	return out
}
