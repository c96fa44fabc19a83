package rules

import (
	"github.com/livalex/egraph/pkg/eg"
)

// DeiterationSites returns a path to every element that duplicates content
// reachable from an enclosing sibling context. For each ordered pair of
// distinct cuts (i, j) at the node's level, every copy of cut i found
// inside cut j is a removable duplicate; likewise every copy of a level
// atom found inside any of the level's cuts. Each reported path is
// prefixed with the index of the cut that holds the duplicate.
func DeiterationSites(g *eg.Graph) []eg.Path {
	var sites []eg.Path
	for i, ci := range g.Children {
		for j, cj := range g.Children {
			if i == j {
				continue
			}
			sites = append(sites, prefix(j, cj.PathsToGraph(ci))...)
		}
	}
	for _, a := range g.Atoms {
		for j, cj := range g.Children {
			sites = append(sites, prefix(j, cj.PathsToAtom(a))...)
		}
	}
	return sites
}

// ApplyDeiteration removes the duplicate addressed by p, returning a new
// graph. Removal mechanics are identical to erasure; the site's legality
// comes from duplication and is established by DeiterationSites. Fails
// with an errors.ErrCodeInvalidPath error when p addresses no element.
// The input graph is not modified.
func ApplyDeiteration(g *eg.Graph, p eg.Path) (*eg.Graph, error) {
	return removeAt(g, p)
}
