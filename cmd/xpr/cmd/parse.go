package cmd

import (
	"fmt"

	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/cwbudde/go-xpr/pkg/xpr"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var (
	parseEvalExpr string
	parseJSON     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse expression text and print its AST",
	Long: `Parse expression text into its untyped AST without compiling it,
printing either a Go-struct dump (default) or the {n,t,c} wire-format
JSON (--json).

Examples:
  xpr parse -e "a.map(x => x * 2)"
  xpr parse --json script.xpr`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the {n,t,c} wire-format JSON instead of a struct dump")
}

func runParse(_ *cobra.Command, args []string) error {
	source, label, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	engine := xpr.New()
	node, err := engine.Parse(source)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", label, err)
	}

	if parseJSON {
		text, err := xpr.ExportJSON(ast.Serialize(node), true)
		if err != nil {
			return fmt.Errorf("serializing AST: %w", err)
		}
		fmt.Println(text)
		return nil
	}

	pretty.Println(node)
	return nil
}
