package eg

import (
	"strings"

	"github.com/livalex/egraph/pkg/errors"
)

// Parse builds a Graph from bracket notation. The text must open and close
// with a matching delimiter pair: parentheses for the sheet of assertion or
// square brackets for a cut. Content is split at top-level commas only;
// commas inside a nested, still-open bracket belong to that nested element.
// Whitespace around tokens is insignificant.
//
// The returned graph is canonical (see Canonicalize). Misframed or
// unbalanced input fails with an errors.ErrCodeMalformedInput error.
func Parse(text string) (*Graph, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 {
		return nil, errors.New(errors.ErrCodeMalformedInput, "notation too short: %q", text)
	}

	var root bool
	switch {
	case s[0] == '(' && s[len(s)-1] == ')':
		root = true
	case s[0] == '[' && s[len(s)-1] == ']':
		root = false
	default:
		return nil, errors.New(errors.ErrCodeMalformedInput,
			"notation must be enclosed in (...) or [...], got %q", text)
	}

	elems, err := splitLevel(s[1 : len(s)-1])
	if err != nil {
		return nil, err
	}

	g := &Graph{Root: root}
	for _, e := range elems {
		if strings.HasPrefix(e, "[") {
			child, err := Parse(e)
			if err != nil {
				return nil, err
			}
			g.Children = append(g.Children, child)
			continue
		}
		if strings.ContainsAny(e, "[]()") {
			return nil, errors.New(errors.ErrCodeMalformedInput, "invalid atom symbol %q", e)
		}
		g.Atoms = append(g.Atoms, e)
	}

	return g.Canonicalize(), nil
}

// splitLevel splits enclosure content at commas that sit at bracket depth
// zero. Each fragment is trimmed of surrounding whitespace. Empty content
// yields no fragments; an empty fragment between commas is malformed.
func splitLevel(content string) ([]string, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	var elems []string
	depth, start := 0, 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, errors.New(errors.ErrCodeMalformedInput,
					"unbalanced brackets in %q", content)
			}
		case ',':
			if depth == 0 {
				elems = append(elems, strings.TrimSpace(content[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.New(errors.ErrCodeMalformedInput, "unbalanced brackets in %q", content)
	}
	elems = append(elems, strings.TrimSpace(content[start:]))

	for _, e := range elems {
		if e == "" {
			return nil, errors.New(errors.ErrCodeMalformedInput, "empty element in %q", content)
		}
	}
	return elems, nil
}
