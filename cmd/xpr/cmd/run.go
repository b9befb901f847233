package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/go-xpr/internal/value"
	"github.com/cwbudde/go-xpr/pkg/xpr"
	"github.com/spf13/cobra"
)

var (
	runEvalExpr  string
	runDumpAST   bool
	runVars      []string
	runStepLimit int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an expression, printing its result",
	Long: `Parse, compile, and evaluate expression text from a file or an
inline -e argument, printing the resulting value.

Examples:
  xpr run -e "1 + 2 * 3"
  xpr run script.xpr
  xpr run -e "x + y" --var x=1 --var y=2
  xpr run -e "while(true){n=n+1;}; n" --step-limit 1000 --var n=0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "print the parsed AST before running")
	runCmd.Flags().StringArrayVar(&runVars, "var", nil, "seed context variable as name=value (repeatable)")
	runCmd.Flags().IntVar(&runStepLimit, "step-limit", 0, "fail loops once this many iterations run (0 = unbounded)")
}

func runRun(_ *cobra.Command, args []string) error {
	source, label, err := readSource(runEvalExpr, args)
	if err != nil {
		return err
	}

	vars, err := parseVarFlags(runVars)
	if err != nil {
		return err
	}

	var opts []xpr.Option
	if runStepLimit > 0 {
		opts = append(opts, xpr.WithStepLimit(runStepLimit))
	}
	engine := xpr.New(opts...)

	if runDumpAST {
		node, err := engine.Parse(source)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", label, err)
		}
		dumpAST(node)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Running %s...\n", label)
	}

	result, err := engine.Eval(source, vars)
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", label, err)
	}
	fmt.Println(value.String(result))
	return nil
}

// parseVarFlags turns a list of "name=value" strings into a variable
// context, inferring bool/int/float/string from the right-hand side the
// same way the parser's own literal scanning does.
func parseVarFlags(raw []string) (map[string]value.Value, error) {
	vars := make(map[string]value.Value, len(raw))
	for _, entry := range raw {
		name, rhs, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("--var %q is not in name=value form", entry)
		}
		vars[name] = inferScalar(rhs)
	}
	return vars, nil
}

func inferScalar(s string) value.Value {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
		return iv
	}
	if fv, err := strconv.ParseFloat(s, 64); err == nil {
		return fv
	}
	return s
}
