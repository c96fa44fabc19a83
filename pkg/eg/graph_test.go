package eg

import "testing"

// mustParse parses notation or fails the test.
func mustParse(t *testing.T, s string) *Graph {
	t.Helper()
	g, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return g
}

func TestGraphSize(t *testing.T) {
	g := mustParse(t, "(a, b, [c], [[d]])")
	if got := g.NumAtoms(); got != 2 {
		t.Errorf("NumAtoms() = %d, want 2", got)
	}
	if got := g.NumChildren(); got != 2 {
		t.Errorf("NumChildren() = %d, want 2", got)
	}
	if got := g.Size(); got != 4 {
		t.Errorf("Size() = %d, want 4", got)
	}
}

func TestGraphCounts(t *testing.T) {
	g := mustParse(t, "(a, [b, [c], d], [[e]])")
	if got := g.CountAtoms(); got != 5 {
		t.Errorf("CountAtoms() = %d, want 5", got)
	}
	if got := g.CountCuts(); got != 4 {
		t.Errorf("CountCuts() = %d, want 4", got)
	}
	if got := g.Depth(); got != 2 {
		t.Errorf("Depth() = %d, want 2", got)
	}
}

func TestClone(t *testing.T) {
	g := mustParse(t, "(a, [b, [c]])")
	c := g.Clone()

	if !g.Equal(c) {
		t.Fatalf("clone %q not equal to original %q", c, g)
	}

	// Mutating the clone must not affect the original.
	c.Atoms[0] = "z"
	c.Children[0].Atoms[0] = "y"
	if g.Atoms[0] != "a" {
		t.Errorf("original atom changed to %q", g.Atoms[0])
	}
	if g.Children[0].Atoms[0] != "b" {
		t.Errorf("original nested atom changed to %q", g.Children[0].Atoms[0])
	}
}

func TestEqualOrderInsensitive(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "AtomsReordered", a: "(a, b)", b: "(b, a)", want: true},
		{name: "CutsReordered", a: "([a], [b])", b: "([b], [a])", want: true},
		{name: "NestedReordered", a: "([b, a], c)", b: "(c, [a, b])", want: true},
		{name: "DifferentAtoms", a: "(a)", b: "(b)", want: false},
		{name: "AtomVersusCut", a: "(a)", b: "([a])", want: false},
		{name: "DifferentNesting", a: "([a])", b: "([[a]])", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustParse(t, tt.a), mustParse(t, tt.b)
			if got := a.Equal(b); got != tt.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{"()", "(b, a)", "([b], [a], c)", "([[b], a], [c])"}

	for _, input := range inputs {
		g := mustParse(t, input)
		once := g.String()
		g.Canonicalize()
		if got := g.String(); got != once {
			t.Errorf("Canonicalize not idempotent for %q: %q then %q", input, once, got)
		}
	}
}

func TestCanonicalLeavesOriginal(t *testing.T) {
	g := &Graph{Root: true, Atoms: []string{"b", "a"}}
	c := g.Canonical()

	if g.Atoms[0] != "b" {
		t.Errorf("Canonical mutated the receiver: atoms = %v", g.Atoms)
	}
	if c.Atoms[0] != "a" {
		t.Errorf("Canonical copy not sorted: atoms = %v", c.Atoms)
	}
}

func TestStringEmptyEnclosures(t *testing.T) {
	sheet := &Graph{Root: true}
	if got := sheet.String(); got != "()" {
		t.Errorf("empty sheet = %q, want ()", got)
	}
	cut := &Graph{}
	if got := cut.String(); got != "[]" {
		t.Errorf("empty cut = %q, want []", got)
	}
}
