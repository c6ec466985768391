package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gosh-lang/gosh/internal/arith"
	"github.com/gosh-lang/gosh/internal/symtab"
)

var arithCmd = &cobra.Command{
	Use:   "arith <expr>",
	Short: "Evaluate a $((...))-style arithmetic expression",
	Long: `Evaluate an arithmetic expression through the Shunting-Yard
machine described in spec.md 4.8: C-style operators, base-2..64
literals ("base#digits"), and pre/post increment/decrement against a
fresh, empty symbol table.

Example:
  gosh arith '2**10 + 0x1F'`,
	Args: cobra.ExactArgs(1),
	RunE: runArith,
}

func init() {
	rootCmd.AddCommand(arithCmd)
}

func runArith(_ *cobra.Command, args []string) error {
	st := symtab.New()

	result, err := arith.Eval(args[0], st)
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}
