// Package parser builds a COMMAND/WORD tree from a token stream.
// It implements exactly one production, parse_simple_command from
// original_source/part5/parser.c: simple commands only, per
// spec.md's Non-goals (no pipelines, control flow, or redirections).
package parser

import (
	"github.com/gosh-lang/gosh/internal/ast"
	"github.com/gosh-lang/gosh/internal/lexer"
	"github.com/gosh-lang/gosh/internal/token"
)

// Parser pulls further tokens from the same lexer the caller used to
// produce the first one.
type Parser struct {
	lex *lexer.Lexer
}

// New creates a Parser that re-tokenizes through lex as needed.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// ParseSimpleCommand builds a COMMAND node starting with first (the
// token the caller already read) and consuming further tokens from
// first.Src until a newline-only token or EOF. A lone newline token
// is consumed and ends the command without becoming a child; EOF
// simply stops the loop, which also yields a valid (possibly
// childless) command.
func (p *Parser) ParseSimpleCommand(first *token.Token) *ast.Node {
	root := ast.NewCommand()

	tok := first
	for {
		if tok == token.EOF {
			break
		}
		if tok.Text == "\n" {
			break
		}

		root.AddChild(ast.NewWord(tok.Text))

		tok = p.lex.Tokenize(tok.Src)
	}

	return root
}
