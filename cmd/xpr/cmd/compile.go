package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/go-xpr/pkg/xpr"
	"github.com/spf13/cobra"
)

var (
	compileEvalExpr string
	compileOutput   string
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile expression text and save the Operand tree as JSON",
	Long: `Compile expression text to an Operand tree and serialize it to the
{n,t,c} wire-format JSON, saving the result as a .xprc file a host can
later hand to DeserializeOperand instead of reparsing.

Examples:
  xpr compile script.xpr
  xpr compile script.xpr -o out.xprc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&compileEvalExpr, "eval", "e", "", "compile inline code instead of reading from file")
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output file (default: <input>.xprc)")
}

func runCompile(_ *cobra.Command, args []string) error {
	source, label, err := readSource(compileEvalExpr, args)
	if err != nil {
		return err
	}

	engine := xpr.New()
	op, err := engine.Compile(source)
	if err != nil {
		return fmt.Errorf("compiling %s: %w", label, err)
	}

	text, err := xpr.ExportJSON(xpr.Serialize(op), true)
	if err != nil {
		return fmt.Errorf("serializing operand tree: %w", err)
	}

	outFile := compileOutput
	if outFile == "" {
		ext := filepath.Ext(label)
		if ext != "" {
			outFile = strings.TrimSuffix(label, ext) + ".xprc"
		} else {
			outFile = label + ".xprc"
		}
	}

	if err := os.WriteFile(outFile, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Compiled %s -> %s (%d bytes)\n", label, outFile, len(text))
	} else {
		fmt.Printf("Compiled %s -> %s\n", label, outFile)
	}
	return nil
}
