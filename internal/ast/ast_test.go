package ast

import "testing"

func TestNewCommandIsEmpty(t *testing.T) {
	cmd := NewCommand()
	if cmd.Kind != Command {
		t.Fatalf("Kind = %v, want Command", cmd.Kind)
	}
	if len(cmd.Words()) != 0 {
		t.Fatalf("Words() = %v, want empty", cmd.Words())
	}
}

func TestAddChildPreservesOrder(t *testing.T) {
	cmd := NewCommand()
	cmd.AddChild(NewWord("echo"))
	cmd.AddChild(NewWord("hello"))
	cmd.AddChild(NewWord("world"))

	got := cmd.Words()
	want := []string{"echo", "hello", "world"}
	if len(got) != len(want) {
		t.Fatalf("Words() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Words() = %q, want %q", got, want)
		}
	}
}

func TestNewWordKindAndValue(t *testing.T) {
	w := NewWord("foo")
	if w.Kind != Word {
		t.Fatalf("Kind = %v, want Word", w.Kind)
	}
	if w.Value != "foo" {
		t.Fatalf("Value = %q, want %q", w.Value, "foo")
	}
	if len(w.Children) != 0 {
		t.Fatalf("Word node should carry no children")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Command: "COMMAND",
		Word:    "WORD",
		Kind(99): "UNKNOWN",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
