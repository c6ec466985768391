// Package exec implements command execution, grounded on
// original_source/part4/executor.c: PATH search, builtin dispatch,
// and forking an external command with the original's exit-status
// convention (126 for a non-executable file, 127 for not found, 1 for
// any other failure). Word expansion runs once per COMMAND node
// argument, per SPEC_FULL.md 13.1: the original's do_simple_command
// only ever copies raw token text into argv, never running it through
// wordexp, but nothing else in the pipeline ever gets the chance to —
// this is evidently an omission a complete shell would not have.
package exec

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"github.com/gosh-lang/gosh/internal/ast"
	"github.com/gosh-lang/gosh/internal/builtins"
	"github.com/gosh-lang/gosh/internal/diag"
	"github.com/gosh-lang/gosh/internal/expand"
	"github.com/gosh-lang/gosh/internal/symtab"
)

// Executor runs parsed COMMAND nodes against a scope stack.
type Executor struct {
	St     *symtab.Stack
	Expand *expand.Expander
	Stdout *os.File
	Stderr *os.File
	Stdin  *os.File
}

// New creates an Executor wired to st, sharing a single Expander so
// command substitution and the executor see the same scope stack.
func New(st *symtab.Stack) *Executor {
	return &Executor{
		St:     st,
		Expand: expand.New(st),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
	}
}

// SearchPath implements search_path: walks the colon-separated PATH
// entries (an empty entry means the current directory), appending
// file to each and returning the first that stat's as a regular file.
func SearchPath(file string) (string, bool) {
	if strings.ContainsRune(file, '/') {
		if st, err := os.Stat(file); err == nil && st.Mode().IsRegular() {
			return file, true
		}
		return "", false
	}

	path := os.Getenv("PATH")
	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			dir = "."
		}
		candidate := dir
		if !strings.HasSuffix(candidate, "/") {
			candidate += "/"
		}
		candidate += file

		st, err := os.Stat(candidate)
		if err != nil || !st.Mode().IsRegular() {
			continue
		}
		return candidate, true
	}

	return "", false
}

// DoSimpleCommand implements do_simple_command: expand every WORD
// child of node into argv, dispatch to a builtin if argv[0] names
// one, otherwise fork+exec the external command, updating "?" with
// its exit status. A childless or nil node is a silent no-op, per the
// source's early return.
func (e *Executor) DoSimpleCommand(node *ast.Node) error {
	if node == nil || len(node.Children) == 0 {
		return nil
	}

	var argv []string
	for _, word := range node.Words() {
		fields, err := e.Expand.WordExpand(word)
		if err != nil {
			return err
		}
		argv = append(argv, fields...)
	}
	if len(argv) == 0 {
		return nil
	}

	if b, ok := builtins.Lookup(argv[0]); ok {
		status := b.Func(argv, e.St, e.Stdout, e.Stderr)
		e.setStatus(status)
		return nil
	}

	status := e.runExternal(argv)
	e.setStatus(status)
	return nil
}

func (e *Executor) setStatus(status int) {
	entry := e.St.AddGlobal("?")
	symtab.SetVal(entry, strconv.Itoa(status))
}

// runExternal forks argv[0] (resolved via PATH unless it already
// contains a slash) and waits for it, translating its outcome into
// the source's exit-status convention.
func (e *Executor) runExternal(argv []string) int {
	path, found := SearchPath(argv[0])
	if !found {
		fmt.Fprint(e.Stderr, diag.New("failed to execute command: no such file or directory").Error())
		return 127
	}

	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	if err == nil {
		return 0
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return ws.ExitStatus()
		}
		return exitErr.ExitCode()
	}

	if os.IsPermission(err) || errors.Is(err, syscall.ENOEXEC) {
		fmt.Fprint(e.Stderr, diag.New(fmt.Sprintf("failed to execute command: %s", err)).Error())
		return 126
	}

	fmt.Fprint(e.Stderr, diag.New(fmt.Sprintf("failed to execute command: %s", err)).Error())
	return 1
}
