// Package lexer implements the shell's tokenizer: Tokenize consumes
// characters from a source.Source and produces one whitespace
// delimited token at a time, preserving quoted spans, backslash
// escapes, and `$...` substitution spans verbatim inside the token
// text. Expansion of that text happens later, in internal/expand.
package lexer

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gosh-lang/gosh/internal/diag"
	"github.com/gosh-lang/gosh/internal/source"
	"github.com/gosh-lang/gosh/internal/token"
)

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithTracing attaches a logrus logger that receives a Debug entry
// per token produced, gated behind the CLI's --trace flag. A nil
// logger disables tracing.
func WithTracing(logger *logrus.Logger) Option {
	return func(l *Lexer) {
		l.logger = logger
	}
}

// Lexer holds the scratch buffer a single Tokenize call accumulates
// its result in. The buffer is a strings.Builder cleared at the start
// of each call; it is not pre-sized and grows as the Builder does.
type Lexer struct {
	buf    strings.Builder
	logger *logrus.Logger
}

// New creates a Lexer. The same Lexer may call Tokenize repeatedly
// against different Sources; its scratch buffer is reset each call.
func New(opts ...Option) *Lexer {
	l := &Lexer{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Lexer) trace(msg string, tok *token.Token) {
	if l.logger == nil || tok == token.EOF {
		return
	}
	l.logger.WithField("token", tok.Text).Debug(msg)
}

// exhaust drives src to end of input, the tokenizer's response to an
// unterminated quote or brace span.
func exhaust(src *source.Source) {
	for {
		c, err := src.Next()
		if err != nil || c == source.EOF {
			return
		}
	}
}

// Tokenize returns the next token from src, or the token.EOF
// singleton once src is exhausted or on an unterminated quote/brace
// (after printing a diagnostic to stderr, per spec.md 4.2/7).
func (l *Lexer) Tokenize(src *source.Source) *token.Token {
	if src == nil || src.Len() == 0 {
		return token.EOF
	}

	l.buf.Reset()

	nc, err := src.Next()
	if err != nil || nc == source.ErrChar || nc == source.EOF {
		return token.EOF
	}

	for {
		done := false

		switch nc {
		case '"', '\'', '`':
			l.buf.WriteByte(byte(nc))
			// nc (the opening quote) is already consumed, so src.Rest()
			// starts one byte past it; FindClosingQuote requires data[0]
			// to be the opening quote, so it has to be prepended back.
			i := FindClosingQuote(string(byte(nc)) + src.Rest())
			if i == 0 {
				exhaust(src)
				fmt.Fprint(os.Stderr, diag.New(fmt.Sprintf("missing closing quote '%c'", nc)).Error())
				return token.EOF
			}
			for ; i > 0; i-- {
				c, _ := src.Next()
				l.buf.WriteByte(byte(c))
			}

		case '\\':
			nc2, _ := src.Next()
			if nc2 == '\n' {
				break
			}
			l.buf.WriteByte('\\')
			if nc2 > 0 {
				l.buf.WriteByte(byte(nc2))
			}

		case '$':
			l.buf.WriteByte('$')
			peeked, _ := src.Peek()
			switch {
			case peeked == '{' || peeked == '(':
				i := FindClosingBrace(src.Rest())
				if i == 0 {
					exhaust(src)
					fmt.Fprint(os.Stderr, diag.New(fmt.Sprintf("missing closing brace '%c'", peeked)).Error())
					return token.EOF
				}
				for ; i >= 0; i-- {
					c, _ := src.Next()
					l.buf.WriteByte(byte(c))
				}
			case isSpecialParamChar(peeked):
				c, _ := src.Next()
				l.buf.WriteByte(byte(c))
			}

		case ' ', '\t':
			if l.buf.Len() > 0 {
				done = true
			}

		case '\n':
			if l.buf.Len() > 0 {
				src.Unget()
			} else {
				l.buf.WriteByte('\n')
			}
			done = true

		default:
			l.buf.WriteByte(byte(nc))
		}

		if done {
			break
		}

		next, _ := src.Next()
		if next == source.EOF {
			break
		}
		nc = next
	}

	if l.buf.Len() == 0 {
		return token.EOF
	}

	tok := token.New(l.buf.String(), src)
	l.trace("tokenize", tok)
	return tok
}

// isSpecialParamChar reports whether c is a one-character special
// parameter name following a bare '$' (alphanumeric, or one of
// * @ # ! ? $), per scanner.c and SPEC_FULL.md 12.1.
func isSpecialParamChar(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	}
	switch c {
	case '*', '@', '#', '!', '?', '$':
		return true
	}
	return false
}
