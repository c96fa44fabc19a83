package rules

import (
	"testing"

	"github.com/livalex/egraph/pkg/eg"
	"github.com/livalex/egraph/pkg/errors"
)

func TestErasureSites(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "every sheet element",
			input: "(a, [b], c)",
			want:  []string{"0", "1", "2"},
		},
		{
			name:  "singleton enclosure only erasable whole",
			input: "([[a], b])",
			want:  []string{"0"},
		},
		{
			name:  "positive context two levels down",
			input: "([x, [y, z]])",
			want:  []string{"0", "0.0.0", "0.0.1"},
		},
		{
			name:  "nothing inside odd contexts",
			input: "([a, b])",
			want:  []string{"0"},
		},
		{
			name:  "empty sheet",
			input: "()",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			got := ErasureSites(g)
			if !sameSites(got, tt.want) {
				t.Errorf("ErasureSites(%q) = %v, want %v", tt.input, siteStrings(got), tt.want)
			}
		})
	}
}

func TestApplyErasure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  eg.Path
		want  string
	}{
		{
			name:  "erase sheet atom",
			input: "(a, [b], c)",
			path:  eg.Path{1},
			want:  "([b], c)",
		},
		{
			name:  "erase sheet cut",
			input: "(a, [b], c)",
			path:  eg.Path{0},
			want:  "(a, c)",
		},
		{
			name:  "erase nested atom",
			input: "([x, [y, z]])",
			path:  eg.Path{0, 0, 1},
			want:  "([x, [y]])",
		},
		{
			name:  "empty the sheet",
			input: "([a])",
			path:  eg.Path{0},
			want:  "()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			before := g.String()

			got, err := ApplyErasure(g, tt.path)
			if err != nil {
				t.Fatalf("ApplyErasure(%q, %v) failed: %v", tt.input, tt.path, err)
			}
			if want := mustParse(t, tt.want); !got.Equal(want) {
				t.Errorf("ApplyErasure(%q, %v) = %v, want %v", tt.input, tt.path, got, want)
			}
			if g.String() != before {
				t.Errorf("input graph mutated: %v", g)
			}
		})
	}
}

// Every reported site is applicable, and applying it strictly shrinks
// the graph: its enclosure loses exactly one element, subtree included.
func TestErasureSitesAreApplicable(t *testing.T) {
	g := mustParse(t, "(a, [b, [c, d]], [e], f)")
	total := g.CountAtoms() + g.CountCuts()

	for _, p := range ErasureSites(g) {
		got, err := ApplyErasure(g, p)
		if err != nil {
			t.Errorf("site %v not applicable: %v", p, err)
			continue
		}
		removed := total - got.CountAtoms() - got.CountCuts()
		if removed < 1 {
			t.Errorf("site %v removed %d elements, want at least 1", p, removed)
		}
	}
}

func TestApplyErasureInvalidPath(t *testing.T) {
	g := mustParse(t, "(a, [b])")

	for _, p := range []eg.Path{{}, {7}, {1, 3}} {
		if _, err := ApplyErasure(g, p); !errors.Is(err, errors.ErrCodeInvalidPath) {
			t.Errorf("ApplyErasure(%v) error = %v, want INVALID_PATH", p, err)
		}
	}
}
