// Package token defines the unit the tokenizer produces and the
// parser consumes: a span of raw command-line text together with a
// back-reference to the Source it came from (so the parser can keep
// pulling further tokens from the same input).
package token

import "github.com/gosh-lang/gosh/internal/source"

// Token is a single word as the tokenizer found it: quote characters,
// backslash escapes, and `$...` substitution spans are all preserved
// verbatim in Text. Expansion happens later, in internal/expand.
type Token struct {
	Text string
	Src  *source.Source
}

// EOF is the distinguished singleton returned once a Source is
// exhausted. Callers compare against it with ==; it carries no Src
// since nothing may read further from it.
var EOF = &Token{}

// IsEOF reports whether t is the EOF singleton.
func (t *Token) IsEOF() bool {
	return t == EOF
}

// New builds a Token over text read from src.
func New(text string, src *source.Source) *Token {
	return &Token{Text: text, Src: src}
}
