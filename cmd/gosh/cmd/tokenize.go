package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gosh-lang/gosh/internal/lexer"
	"github.com/gosh-lang/gosh/internal/source"
	"github.com/gosh-lang/gosh/internal/token"
)

var tokenizeEvalExpr string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [line]",
	Short: "Tokenize a command line and print the resulting tokens",
	Long: `Tokenize a single command line and print each token gosh's
lexer produces, one per line, quoted.

Examples:
  gosh tokenize 'echo "$HOME"/*.txt'
  gosh tokenize -e 'a=1 b=2'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeEvalExpr, "eval", "e", "", "tokenize inline text instead of the positional argument")
}

func runTokenize(_ *cobra.Command, args []string) error {
	line, err := inputLine(tokenizeEvalExpr, args)
	if err != nil {
		return err
	}

	lx := lexer.New()
	src := source.New(line)

	count := 0
	for {
		tok := lx.Tokenize(src)
		if tok == token.EOF {
			break
		}
		count++
		fmt.Printf("%q\n", tok.Text)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "total tokens: %d\n", count)
	}

	return nil
}

func inputLine(evalExpr string, args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("either provide a line argument or use -e")
}
