// Command xpr is a small CLI front-end over the xpr engine: parse,
// compile, or run expression text from a file or the -e flag.
package main

import (
	"os"

	"github.com/cwbudde/go-xpr/cmd/xpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
