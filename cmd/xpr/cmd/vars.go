package cmd

import (
	"fmt"

	"github.com/cwbudde/go-xpr/pkg/xpr"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var varsEvalExpr string

var varsCmd = &cobra.Command{
	Use:   "vars [file]",
	Short: "List the variables, constants, operators, and functions an expression uses",
	Long: `Compile expression text and print every variable, constant,
operator, and function reachable from it, the same introspection a host
uses to validate a context before running (spec §4.7 "operandType" and
friends).

Examples:
  xpr vars -e "a.filter(x => x > min).length"
  xpr vars script.xpr`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVarsCmd,
}

func init() {
	rootCmd.AddCommand(varsCmd)

	varsCmd.Flags().StringVarP(&varsEvalExpr, "eval", "e", "", "inspect inline code instead of reading from file")
}

func runVarsCmd(_ *cobra.Command, args []string) error {
	source, label, err := readSource(varsEvalExpr, args)
	if err != nil {
		return err
	}

	engine := xpr.New()
	op, err := engine.Compile(source)
	if err != nil {
		return fmt.Errorf("compiling %s: %w", label, err)
	}

	fmt.Println("Vars:")
	pretty.Println(engine.Vars(op))
	fmt.Println("Constants:")
	pretty.Println(engine.Constants(op))
	fmt.Println("Operators:")
	pretty.Println(engine.Operators(op))
	fmt.Println("Functions:")
	pretty.Println(engine.Functions(op))
	return nil
}
