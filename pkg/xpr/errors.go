package xpr

import "fmt"

func errInvalidJSON(text string) error {
	return fmt.Errorf("xpr: invalid JSON: %q", text)
}
