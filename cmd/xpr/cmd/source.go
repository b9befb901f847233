package cmd

import (
	"fmt"
	"os"
)

// readSource resolves the expression text to operate on: evalExpr takes
// precedence over a file argument, matching run/parse/compile's shared
// `-e expr | file` shape.
func readSource(evalExpr string, args []string) (source, label string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
