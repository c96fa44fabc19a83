package rules

import (
	"github.com/livalex/egraph/pkg/eg"
)

// ErasureSites returns a path to every element that may be erased. Classical
// erasure is sound only in a positive context: an enclosure evenly nested
// from the sheet of assertion, the sheet itself counting as depth zero.
//
// A singleton enclosure below the sheet offers no site for its sole
// element; erasing it is the business of the double-cut rule or of erasing
// the enclosure one level up. The sheet itself may always be emptied.
func ErasureSites(g *eg.Graph) []eg.Path {
	return erasureSites(g, 0)
}

func erasureSites(g *eg.Graph, depth int) []eg.Path {
	var sites []eg.Path
	if depth%2 == 0 && (depth == 0 || g.Size() > 1) {
		for idx := 0; idx < g.Size(); idx++ {
			sites = append(sites, eg.Path{idx})
		}
	}
	for i, c := range g.Children {
		sites = append(sites, prefix(i, erasureSites(c, depth+1))...)
	}
	return sites
}

// ApplyErasure removes the element addressed by p, returning a new graph.
// The path's legality under the depth-parity policy is established by
// ErasureSites; ApplyErasure itself only requires that p address an
// existing element and fails with an errors.ErrCodeInvalidPath error
// otherwise. The input graph is not modified.
func ApplyErasure(g *eg.Graph, p eg.Path) (*eg.Graph, error) {
	return removeAt(g, p)
}
