package expand

import (
	"fmt"
	"testing"

	"github.com/gosh-lang/gosh/internal/symtab"
)

func newExpander(t *testing.T) (*Expander, *symtab.Stack) {
	t.Helper()
	st := symtab.New()
	e := New(st)
	return e, st
}

func setVar(st *symtab.Stack, name, val string) {
	e := st.AddToSymtab(name)
	symtab.SetVal(e, val)
}

func TestWordExpandPlainWord(t *testing.T) {
	e, _ := newExpander(t)
	fields, err := e.WordExpand("hello")
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	if len(fields) != 1 || fields[0] != "hello" {
		t.Fatalf("WordExpand(hello) = %q, want [hello]", fields)
	}
}

func TestWordExpandEmptyWordYieldsOneEmptyField(t *testing.T) {
	e, _ := newExpander(t)
	fields, err := e.WordExpand("")
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	if len(fields) != 1 || fields[0] != "" {
		t.Fatalf("WordExpand(\"\") = %q, want ['']", fields)
	}
}

func TestWordExpandVariableSubstitution(t *testing.T) {
	e, st := newExpander(t)
	setVar(st, "NAME", "world")
	fields, err := e.WordExpand("hello-$NAME")
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	if len(fields) != 1 || fields[0] != "hello-world" {
		t.Fatalf("WordExpand(hello-$NAME) = %q, want [hello-world]", fields)
	}
}

func TestWordExpandFieldSplitsUnquotedSubstitution(t *testing.T) {
	e, st := newExpander(t)
	setVar(st, "LIST", "a b c")
	fields, err := e.WordExpand("$LIST")
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(fields) != len(want) {
		t.Fatalf("WordExpand($LIST) = %q, want %q", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("WordExpand($LIST) = %q, want %q", fields, want)
		}
	}
}

func TestWordExpandDoubleQuotedSubstitutionDoesNotSplit(t *testing.T) {
	e, st := newExpander(t)
	setVar(st, "LIST", "a b c")
	fields, err := e.WordExpand(`"$LIST"`)
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	if len(fields) != 1 || fields[0] != "a b c" {
		t.Fatalf(`WordExpand("$LIST") = %q, want ["a b c"]`, fields)
	}
}

func TestWordExpandDefaultOperator(t *testing.T) {
	e, _ := newExpander(t)
	fields, err := e.WordExpand("${UNSET:-fallback}")
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	if len(fields) != 1 || fields[0] != "fallback" {
		t.Fatalf("WordExpand(${UNSET:-fallback}) = %q, want [fallback]", fields)
	}
}

func TestWordExpandAssignDefaultWritesBack(t *testing.T) {
	e, st := newExpander(t)
	if _, err := e.WordExpand("${NEWVAR:=assigned}"); err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	entry := st.GetSymtabEntry("NEWVAR")
	if entry == nil || entry.Value != "assigned" {
		t.Fatalf("symtab entry for NEWVAR = %+v, want value 'assigned'", entry)
	}
}

func TestWordExpandLengthOperator(t *testing.T) {
	e, st := newExpander(t)
	setVar(st, "NAME", "hello")
	fields, err := e.WordExpand("${#NAME}")
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	if len(fields) != 1 || fields[0] != "5" {
		t.Fatalf("WordExpand(${#NAME}) = %q, want [5]", fields)
	}
}

func TestWordExpandArithmeticSubstitution(t *testing.T) {
	e, _ := newExpander(t)
	fields, err := e.WordExpand("$((2+3))")
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	if len(fields) != 1 || fields[0] != "5" {
		t.Fatalf("WordExpand($((2+3))) = %q, want [5]", fields)
	}
}

func TestWordExpandCommandSubstitutionUsesRunner(t *testing.T) {
	e, _ := newExpander(t)
	e.Runner = func(cmd string) (string, error) {
		return fmt.Sprintf("ran:%s\n", cmd), nil
	}
	fields, err := e.WordExpand("$(echo hi)")
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	want := []string{"ran:echo", "hi"}
	if len(fields) != len(want) {
		t.Fatalf("WordExpand($(echo hi)) = %q, want %q", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("WordExpand($(echo hi)) = %q, want %q", fields, want)
		}
	}
}

func TestWordExpandBackquoteCommandSubstitution(t *testing.T) {
	e, _ := newExpander(t)
	e.Runner = func(cmd string) (string, error) {
		return "output\n", nil
	}
	fields, err := e.WordExpand("`echo hi`")
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	if len(fields) != 1 || fields[0] != "output" {
		t.Fatalf("WordExpand(`echo hi`) = %q, want [output]", fields)
	}
}

func TestWordExpandTildeAtStart(t *testing.T) {
	e, _ := newExpander(t)
	t.Setenv("HOME", "/home/tester")
	fields, err := e.WordExpand("~/bin")
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	if len(fields) != 1 || fields[0] != "/home/tester/bin" {
		t.Fatalf("WordExpand(~/bin) = %q, want [/home/tester/bin]", fields)
	}
}

func TestWordExpandSingleQuotePreventsSubstitution(t *testing.T) {
	e, st := newExpander(t)
	setVar(st, "NAME", "world")
	fields, err := e.WordExpand(`'$NAME'`)
	if err != nil {
		t.Fatalf("WordExpand error: %v", err)
	}
	if len(fields) != 1 || fields[0] != "$NAME" {
		t.Fatalf("WordExpand('$NAME') = %q, want [$NAME]", fields)
	}
}

func TestWordExpandToStrFlattensWithoutSplitting(t *testing.T) {
	e, st := newExpander(t)
	setVar(st, "LIST", "a b c")
	got, err := e.WordExpandToStr("prefix-$LIST")
	if err != nil {
		t.Fatalf("WordExpandToStr error: %v", err)
	}
	if got != "prefix-a b c" {
		t.Fatalf("WordExpandToStr = %q, want %q", got, "prefix-a b c")
	}
}
