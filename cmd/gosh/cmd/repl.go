package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gosh-lang/gosh/internal/config"
	"github.com/gosh-lang/gosh/internal/diag"
	"github.com/gosh-lang/gosh/internal/exec"
	"github.com/gosh-lang/gosh/internal/lexer"
	"github.com/gosh-lang/gosh/internal/parser"
	"github.com/gosh-lang/gosh/internal/source"
	"github.com/gosh-lang/gosh/internal/symtab"
	"github.com/gosh-lang/gosh/internal/token"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read, tokenize, parse, and execute command lines interactively",
	Long: `The default gosh command: a read-eval loop over standard input.

Each line is tokenized into a simple command, word-expanded, and
executed, with results following the pipeline described in
original_source/part5: one COMMAND node per line, no pipelines or
control flow.`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd, args)
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	st := symtab.New()

	overrides, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, diag.New(err.Error()).Error())
	}
	config.Seed(st, overrides)
	config.Init(st)

	ex := exec.New(st)

	var lexOpts []lexer.Option
	if trace {
		lexOpts = append(lexOpts, lexer.WithTracing(Logger))
	}
	lx := lexer.New(lexOpts...)
	ps := parser.New(lx)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		printPrompt1(st)

		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		src := source.New(line + "\n")
		tok := lx.Tokenize(src)
		if tok == token.EOF {
			continue
		}

		node := ps.ParseSimpleCommand(tok)
		if err := ex.DoSimpleCommand(node); err != nil {
			fmt.Fprint(os.Stderr, diag.New(err.Error()).Error())
		}
	}

	return nil
}

// printPrompt1 implements print_prompt1: write PS1 to stderr, falling
// back to "$ " when unset.
func printPrompt1(st *symtab.Stack) {
	if entry := st.GetSymtabEntry("PS1"); entry != nil && entry.Value != "" {
		fmt.Fprint(os.Stderr, entry.Value)
		return
	}
	fmt.Fprint(os.Stderr, "$ ")
}
