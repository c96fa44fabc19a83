package rules

import (
	"testing"

	"github.com/livalex/egraph/pkg/eg"
	"github.com/livalex/egraph/pkg/errors"
)

func TestDoubleCutSites(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single double cut",
			input: "(a, [b], [[c]])",
			want:  []string{"0"},
		},
		{
			name:  "nested double cuts",
			input: "(a, [[[b]]])",
			want:  []string{"0", "0.0"},
		},
		{
			name:  "no sites",
			input: "(a, [b, c])",
			want:  nil,
		},
		{
			name:  "empty pair of cuts",
			input: "([[]])",
			want:  []string{"0"},
		},
		{
			name:  "cut with extra atom blocks collapse",
			input: "([a, [b]])",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			got := DoubleCutSites(g)
			if !sameSites(got, tt.want) {
				t.Errorf("DoubleCutSites(%q) = %v, want %v", tt.input, siteStrings(got), tt.want)
			}
		})
	}
}

func TestApplyDoubleCut(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  eg.Path
		want  string
	}{
		{
			name:  "splice atom into sheet",
			input: "(a, [b], [[c]])",
			path:  eg.Path{0},
			want:  "(a, [b], c)",
		},
		{
			name:  "outer pair of nested cuts",
			input: "(a, [[[b]]])",
			path:  eg.Path{0},
			want:  "(a, [b])",
		},
		{
			name:  "inner pair of nested cuts",
			input: "(a, [[[b]]])",
			path:  eg.Path{0, 0},
			want:  "(a, [b])",
		},
		{
			name:  "splice mixed contents",
			input: "([[a, [b]]])",
			path:  eg.Path{0},
			want:  "(a, [b])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			before := g.String()

			got, err := ApplyDoubleCut(g, tt.path)
			if err != nil {
				t.Fatalf("ApplyDoubleCut(%q, %v) failed: %v", tt.input, tt.path, err)
			}
			if want := mustParse(t, tt.want); !got.Equal(want) {
				t.Errorf("ApplyDoubleCut(%q, %v) = %v, want %v", tt.input, tt.path, got, want)
			}
			if g.String() != before {
				t.Errorf("input graph mutated: %v", g)
			}
		})
	}
}

// Wrapping any cut in a fresh double cut and collapsing at that position
// gives back the original graph.
func TestDoubleCutWrapCollapse(t *testing.T) {
	inputs := []string{
		"([a, b], c)",
		"([a], [b, [c]])",
		"([[a]], b)",
	}

	for _, input := range inputs {
		g := mustParse(t, input)
		for i := range g.Children {
			wrapped := g.Clone()
			inner := &eg.Graph{Children: []*eg.Graph{wrapped.Children[i]}}
			wrapped.Children[i] = &eg.Graph{Children: []*eg.Graph{inner}}

			got, err := ApplyDoubleCut(wrapped, eg.Path{i})
			if err != nil {
				t.Fatalf("collapse of wrapped cut %d in %q failed: %v", i, input, err)
			}
			if !got.Equal(g) {
				t.Errorf("wrap+collapse of cut %d in %q = %v, want original", i, input, got)
			}
		}
	}
}

func TestApplyDoubleCutInvalidPath(t *testing.T) {
	g := mustParse(t, "(a, [b], [[c]])")

	tests := []struct {
		name string
		path eg.Path
	}{
		{name: "empty path", path: eg.Path{}},
		{name: "not a double cut", path: eg.Path{1}},
		{name: "index out of range", path: eg.Path{5}},
		{name: "step through atom index", path: eg.Path{2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ApplyDoubleCut(g, tt.path); !errors.Is(err, errors.ErrCodeInvalidPath) {
				t.Errorf("ApplyDoubleCut(%v) error = %v, want INVALID_PATH", tt.path, err)
			}
		})
	}
}
