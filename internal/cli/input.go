package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readNotation resolves a notation argument. "-" reads from stdin; an
// existing file path reads the file; anything else is taken as literal
// notation text.
func readNotation(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", arg, err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return arg, nil
}
