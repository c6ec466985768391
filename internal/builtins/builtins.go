// Package builtins implements the shell's builtin command table,
// grounded on original_source/part4/builtins/builtins.c: a name-to-
// function table the executor consults before falling back to PATH
// search. The tutorial ships exactly one builtin, dump; this project
// keeps that scope (spec.md's Non-goals exclude cd, export, and the
// rest of a full builtin set) and adds a --json flag to it per
// SPEC_FULL.md 12.5.
package builtins

import (
	"os"

	"github.com/gosh-lang/gosh/internal/symtab"
)

// Func runs a builtin against argv (argv[0] is its own name) and the
// current scope stack, writing to the given streams, and returns the
// process-style exit status to store in "?".
type Func func(argv []string, st *symtab.Stack, stdout, stderr *os.File) int

// Builtin pairs a builtin's name with its implementation.
type Builtin struct {
	Name string
	Func Func
}

var table = []Builtin{
	{Name: "dump", Func: dumpBuiltin},
}

// Lookup finds the builtin named name, mirroring do_simple_command's
// linear scan of the builtins array.
func Lookup(name string) (Builtin, bool) {
	for _, b := range table {
		if b.Name == name {
			return b, true
		}
	}
	return Builtin{}, false
}
