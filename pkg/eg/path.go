package eg

import (
	"slices"
	"strconv"
	"strings"

	"github.com/livalex/egraph/pkg/errors"
)

// Path addresses an element inside a graph: each step selects a combined
// index at one nesting level, where cuts occupy low indices and atoms
// follow. A path of length n descends through n-1 cuts and selects the
// element at the final index.
//
// The textual form joins indices with dots, e.g. "0.2.1".
type Path []int

// String renders the path in dotted form. The empty path renders as "".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path { return slices.Clone(p) }

// ParsePath parses the dotted form produced by Path.String. Empty input,
// non-numeric steps, and negative indices fail with an
// errors.ErrCodeInvalidPath error.
func ParsePath(s string) (Path, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "empty path")
	}
	parts := strings.Split(s, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidPath, "invalid path step %q", part)
		}
		if idx < 0 {
			return nil, errors.New(errors.ErrCodeInvalidPath, "negative path step %d", idx)
		}
		p[i] = idx
	}
	return p, nil
}

// prefixed returns a copy of each sub-path with idx prepended.
func prefixed(idx int, subs []Path) []Path {
	out := make([]Path, len(subs))
	for i, sub := range subs {
		p := make(Path, 0, len(sub)+1)
		p = append(p, idx)
		out[i] = append(p, sub...)
	}
	return out
}

// selector is the resolved form of one combined index: which element kind
// it addresses and the position within that kind's slice.
type selector struct {
	atom  bool
	index int
}

// resolve maps a combined index onto the enclosure's elements. It reports
// false when idx is out of range.
func (g *Graph) resolve(idx int) (selector, bool) {
	switch {
	case idx < 0:
		return selector{}, false
	case idx < len(g.Children):
		return selector{atom: false, index: idx}, true
	case idx < g.Size():
		return selector{atom: true, index: idx - len(g.Children)}, true
	}
	return selector{}, false
}

// Remove deletes the element at combined index idx from the enclosure, in
// place. It reports whether idx addressed an element.
func (g *Graph) Remove(idx int) bool {
	sel, ok := g.resolve(idx)
	if !ok {
		return false
	}
	if sel.atom {
		g.Atoms = slices.Delete(g.Atoms, sel.index, sel.index+1)
	} else {
		g.Children = slices.Delete(g.Children, sel.index, sel.index+1)
	}
	return true
}
