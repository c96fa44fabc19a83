package eg

// ContainsAtom reports whether symbol appears as an atom anywhere in the
// graph, at any nesting depth.
func (g *Graph) ContainsAtom(symbol string) bool {
	for _, a := range g.Atoms {
		if a == symbol {
			return true
		}
	}
	for _, c := range g.Children {
		if c.ContainsAtom(symbol) {
			return true
		}
	}
	return false
}

// ContainsGraph reports whether any cut in the graph is structurally equal
// to sub.
func (g *Graph) ContainsGraph(sub *Graph) bool {
	want := sub.Canonical().String()
	return g.containsRepr(want)
}

func (g *Graph) containsRepr(want string) bool {
	for _, c := range g.Children {
		if c.Canonical().String() == want || c.containsRepr(want) {
			return true
		}
	}
	return false
}

// PathsToAtom returns every path to an occurrence of symbol at or below
// the node. An occurrence that is the sole content of its enclosure is
// skipped: it has no meaningful position distinct from the enclosure
// itself.
func (g *Graph) PathsToAtom(symbol string) []Path {
	var paths []Path
	nc := g.NumChildren()
	for k, a := range g.Atoms {
		if a == symbol && g.Size() > 1 {
			paths = append(paths, Path{nc + k})
		}
	}
	for i, c := range g.Children {
		if c.ContainsAtom(symbol) {
			paths = append(paths, prefixed(i, c.PathsToAtom(symbol))...)
		}
	}
	return paths
}

// PathsToGraph returns every path to a cut structurally equal to target at
// or below the node, with the same sole-content exclusion as PathsToAtom
// applied at each level. A matching cut is reported but not descended
// into.
func (g *Graph) PathsToGraph(target *Graph) []Path {
	want := target.Canonical().String()
	return g.pathsToRepr(want)
}

func (g *Graph) pathsToRepr(want string) []Path {
	var paths []Path
	for i, c := range g.Children {
		if c.Canonical().String() == want && g.Size() > 1 {
			paths = append(paths, Path{i})
			continue
		}
		paths = append(paths, prefixed(i, c.pathsToRepr(want))...)
	}
	return paths
}
