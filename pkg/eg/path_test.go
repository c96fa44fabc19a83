package eg

import (
	"testing"

	"github.com/livalex/egraph/pkg/errors"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{path: Path{0}, want: "0"},
		{path: Path{0, 2, 1}, want: "0.2.1"},
		{path: Path{}, want: ""},
	}

	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("Path%v.String() = %q, want %q", []int(tt.path), got, tt.want)
		}
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr bool
	}{
		{name: "Single", input: "0", want: Path{0}},
		{name: "Dotted", input: "0.2.1", want: Path{0, 2, 1}},
		{name: "Spaces", input: " 1 . 2 ", want: Path{1, 2}},
		{name: "Empty", input: "", wantErr: true},
		{name: "NonNumeric", input: "0.x", wantErr: true},
		{name: "Negative", input: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePath(%q) succeeded with %v, want error", tt.input, got)
				}
				if !errors.Is(err, errors.ErrCodeInvalidPath) {
					t.Errorf("error code = %v, want INVALID_PATH", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePath(%q): %v", tt.input, err)
			}
			if got.String() != tt.want.String() {
				t.Errorf("ParsePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name string
		idx  int
		ok   bool
		want string
	}{
		{name: "FirstCut", idx: 0, ok: true, want: "([c], a, b)"},
		{name: "SecondCut", idx: 1, ok: true, want: "([[d]], a, b)"},
		{name: "FirstAtom", idx: 2, ok: true, want: "([[d]], [c], b)"},
		{name: "LastAtom", idx: 3, ok: true, want: "([[d]], [c], a)"},
		{name: "OutOfRange", idx: 4, ok: false},
		{name: "Negative", idx: -1, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// canonical form: [[d]] at 0, [c] at 1, atoms a, b at 2, 3
			g := mustParse(t, "(a, b, [c], [[d]])")
			if ok := g.Remove(tt.idx); ok != tt.ok {
				t.Fatalf("Remove(%d) = %v, want %v", tt.idx, ok, tt.ok)
			}
			if tt.ok {
				if got := g.String(); got != tt.want {
					t.Errorf("after Remove(%d): %q, want %q", tt.idx, got, tt.want)
				}
			}
		})
	}
}
