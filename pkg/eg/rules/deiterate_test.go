package rules

import (
	"testing"

	"github.com/livalex/egraph/pkg/eg"
	"github.com/livalex/egraph/pkg/errors"
)

func TestDeiterationSites(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "atom copied into sibling cut",
			input: "(a, [a, b])",
			want:  []string{"0.0"},
		},
		{
			name:  "cut copied into sibling cut",
			input: "([a], [[a], c])",
			want:  []string{"0.0"},
		},
		{
			name:  "no duplicates",
			input: "(a, [b])",
			want:  nil,
		},
		{
			name:  "copy two levels deep",
			input: "(a, [b, [a, c]])",
			want:  []string{"0.0.0"},
		},
		{
			name:  "atom duplicated in two cuts",
			input: "(a, [a, b], [a, c])",
			want:  []string{"0.0", "1.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			got := DeiterationSites(g)
			if !sameSites(got, tt.want) {
				t.Errorf("DeiterationSites(%q) = %v, want %v", tt.input, siteStrings(got), tt.want)
			}
		})
	}
}

func TestApplyDeiteration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  eg.Path
		want  string
	}{
		{
			name:  "remove duplicated atom",
			input: "(a, [a, b])",
			path:  eg.Path{0, 0},
			want:  "(a, [b])",
		},
		{
			name:  "remove duplicated cut",
			input: "([a], [[a], c])",
			path:  eg.Path{0, 0},
			want:  "([a], [c])",
		},
		{
			name:  "remove deep duplicate",
			input: "(a, [b, [a, c]])",
			path:  eg.Path{0, 0, 0},
			want:  "(a, [b, [c]])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			before := g.String()

			got, err := ApplyDeiteration(g, tt.path)
			if err != nil {
				t.Fatalf("ApplyDeiteration(%q, %v) failed: %v", tt.input, tt.path, err)
			}
			if want := mustParse(t, tt.want); !got.Equal(want) {
				t.Errorf("ApplyDeiteration(%q, %v) = %v, want %v", tt.input, tt.path, got, want)
			}
			if g.String() != before {
				t.Errorf("input graph mutated: %v", g)
			}
		})
	}
}

func TestDeiterationSitesAreApplicable(t *testing.T) {
	g := mustParse(t, "(a, [a, b], [[a], a, c])")
	for _, p := range DeiterationSites(g) {
		if _, err := ApplyDeiteration(g, p); err != nil {
			t.Errorf("site %v not applicable: %v", p, err)
		}
	}
}

func TestApplyDeiterationInvalidPath(t *testing.T) {
	g := mustParse(t, "(a, [a, b])")

	for _, p := range []eg.Path{{}, {4}, {0, 9}} {
		if _, err := ApplyDeiteration(g, p); !errors.Is(err, errors.ErrCodeInvalidPath) {
			t.Errorf("ApplyDeiteration(%v) error = %v, want INVALID_PATH", p, err)
		}
	}
}
