package cmd

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/gosh-lang/gosh/internal/expand"
	"github.com/gosh-lang/gosh/internal/lexer"
	"github.com/gosh-lang/gosh/internal/parser"
	"github.com/gosh-lang/gosh/internal/source"
	"github.com/gosh-lang/gosh/internal/token"
)

var (
	parseEvalExpr string
	parseRepr     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [line]",
	Short: "Parse a command line and print the resulting COMMAND/WORD tree",
	Long: `Parse a single command line into its COMMAND node and print it.

With --repr, the tree is rendered with alecthomas/repr instead of the
default one-line dump, for debugging (SPEC_FULL.md 12.6).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline text instead of the positional argument")
	parseCmd.Flags().BoolVar(&parseRepr, "repr", false, "pretty-print the AST with alecthomas/repr")
}

func runParse(_ *cobra.Command, args []string) error {
	line, err := inputLine(parseEvalExpr, args)
	if err != nil {
		return err
	}

	lx := lexer.New()
	ps := parser.New(lx)
	src := source.New(line)

	first := lx.Tokenize(src)
	if first == token.EOF {
		fmt.Println("(empty command)")
		return nil
	}

	node := ps.ParseSimpleCommand(first)

	if parseRepr {
		repr.Println(node)
		return nil
	}

	words := node.Words()
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = expand.QuoteValue(w, true)
	}
	fmt.Printf("COMMAND %s\n", strings.Join(quoted, " "))
	return nil
}
