package errors

import (
	"strings"
	"testing"
)

func TestValidateGraphName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "modus-ponens", wantErr: false},
		{name: "with digits", input: "lemma42", wantErr: false},
		{name: "with underscore", input: "double_negation", wantErr: false},
		{name: "with dot", input: "peirce.v2", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 129), wantErr: true},
		{name: "max length ok", input: strings.Repeat("a", 128), wantErr: false},
		{name: "embedded space", input: "my graph", wantErr: true},
		{name: "tab character", input: "my\tgraph", wantErr: true},
		{name: "parent traversal", input: "../etc/passwd", wantErr: true},
		{name: "double dot only", input: "a..b", wantErr: true},
		{name: "forward slash", input: "a/b", wantErr: true},
		{name: "backslash", input: "a\\b", wantErr: true},
		{name: "null byte", input: "a\x00b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraphName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGraphName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateGraphName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}
