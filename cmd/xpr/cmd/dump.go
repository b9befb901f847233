package cmd

import (
	"fmt"

	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/kr/pretty"
)

// dumpAST prints a Go-struct rendering of node to stdout, the same
// introspection style kr/pretty gives the teacher's debug-tool output.
func dumpAST(node *ast.Node) {
	fmt.Println("AST:")
	pretty.Println(node)
	fmt.Println()
}
