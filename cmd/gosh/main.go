// Command gosh is a small POSIX-flavored shell: a tokenizer, a
// simple-command parser, a word-expansion engine, a Shunting-Yard
// arithmetic evaluator, and an executor with one builtin, dump.
package main

import (
	"fmt"
	"os"

	"github.com/gosh-lang/gosh/cmd/gosh/cmd"
	"github.com/gosh-lang/gosh/internal/diag"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, diag.New(err.Error()).Error())
		os.Exit(1)
	}
}
