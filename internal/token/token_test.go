package token

import (
	"testing"

	"github.com/gosh-lang/gosh/internal/source"
)

func TestNewCarriesTextAndSrc(t *testing.T) {
	src := source.New("echo hi")
	tok := New("echo", src)
	if tok.Text != "echo" {
		t.Fatalf("Text = %q, want %q", tok.Text, "echo")
	}
	if tok.Src != src {
		t.Fatalf("Src not preserved")
	}
}

func TestEOFIsEOF(t *testing.T) {
	if !EOF.IsEOF() {
		t.Fatalf("EOF.IsEOF() = false, want true")
	}
}

func TestNewTokenIsNotEOF(t *testing.T) {
	tok := New("x", nil)
	if tok.IsEOF() {
		t.Fatalf("New(...).IsEOF() = true, want false")
	}
	if tok == EOF {
		t.Fatalf("New(...) must not alias the EOF singleton")
	}
}
