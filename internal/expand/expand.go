// Package expand implements the word-expansion pipeline from
// original_source/part5/wordexp.c: tilde expansion, parameter
// expansion, command substitution, arithmetic expansion, IFS field
// splitting, pathname globbing, and quote removal, coordinated by
// WordExpand over a single raw word.
package expand

import (
	"os/exec"
	"strings"

	"github.com/gosh-lang/gosh/internal/arith"
	"github.com/gosh-lang/gosh/internal/lexer"
	"github.com/gosh-lang/gosh/internal/pattern"
	"github.com/gosh-lang/gosh/internal/symtab"
)

// Runner executes a shell command string for command substitution and
// returns its captured standard output.
type Runner func(cmd string) (string, error)

// Expander coordinates word expansion against a scope stack. The zero
// value is not usable; construct with New.
type Expander struct {
	St     *symtab.Stack
	Runner Runner
}

// New creates an Expander backed by st, running substituted commands
// through /bin/sh -c via os/exec.
func New(st *symtab.Stack) *Expander {
	return &Expander{St: st, Runner: defaultRunner}
}

func defaultRunner(cmd string) (string, error) {
	out, err := exec.Command("/bin/sh", "-c", cmd).Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return string(out), nil
		}
		return "", err
	}
	return string(out), nil
}

// WordExpand transforms one raw word (tokenizer output, quotes and
// escapes still in place) into its final list of fields: substitution,
// then field splitting (if anything was expanded or unquoted
// whitespace was seen), then pathname expansion, then quote removal.
// An empty input yields a single empty field.
func (e *Expander) WordExpand(word string) ([]string, error) {
	if word == "" {
		return []string{""}, nil
	}

	sub, expanded, err := e.scan(word)
	if err != nil {
		return nil, err
	}

	var fields []string
	if expanded {
		fields = e.fieldSplit(sub)
	} else {
		fields = []string{sub}
	}

	fields = e.pathnamesExpand(fields)

	for i := range fields {
		fields[i] = RemoveQuotes(fields[i])
	}

	return fields, nil
}

// WordExpandToStr recursively expands s down to a single flat string:
// substitution and quote removal, but no field splitting or pathname
// expansion. Used to flatten a parameter-expansion replacement value
// (spec.md 4.7.2); the executor builds argv with WordExpand instead.
func (e *Expander) WordExpandToStr(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	sub, _, err := e.scan(s)
	if err != nil {
		return "", err
	}
	return RemoveQuotes(sub), nil
}

// scan walks word once, applying every substitution in place, and
// reports whether anything was expanded (which gates field splitting).
func (e *Expander) scan(word string) (string, bool, error) {
	var out strings.Builder
	inDQ := false
	inVarAssign := false
	varAssignEq := 0
	expanded := false

	nameLen := validNameLen(word)

	i := 0
	n := len(word)
	for i < n {
		c := word[i]

		switch {
		case c == '~' && e.tildeEligible(word, i, inVarAssign, varAssignEq):
			j := i + 1
			for j < n && word[j] != '/' && !(inVarAssign && word[j] == ':') {
				j++
			}
			prefix := word[i:j]
			if strings.ContainsAny(prefix, "\"'") {
				out.WriteByte(c)
				i++
				continue
			}
			home, err := TildeExpand(prefix)
			if err != nil {
				out.WriteByte(c)
				i++
				continue
			}
			out.WriteString(home)
			i = j

		case c == '"':
			inDQ = !inDQ
			out.WriteByte(c)
			i++

		case c == '=' && !inDQ && i == nameLen && nameLen > 0:
			inVarAssign = true
			varAssignEq++
			out.WriteByte(c)
			i++

		case c == '=' && !inDQ && inVarAssign:
			varAssignEq++
			out.WriteByte(c)
			i++

		case c == '\\':
			out.WriteByte(c)
			i++
			if i < n {
				out.WriteByte(word[i])
				i++
			}

		case c == '\'' && !inDQ:
			j := lexer.FindClosingQuote(word[i:])
			if j == 0 {
				out.WriteString(word[i:])
				i = n
				continue
			}
			out.WriteString(word[i : i+j+1])
			i += j + 1

		case c == '`':
			j := lexer.FindClosingQuote(word[i:])
			if j == 0 {
				out.WriteString(word[i:])
				i = n
				continue
			}
			span := word[i : i+j+1]
			result, err := e.CommandSubstitute(span)
			if err != nil {
				return "", false, err
			}
			out.WriteString(result)
			expanded = true
			i += j + 1

		case c == '$':
			consumed, text, didExpand, err := e.dollar(word[i:])
			if err != nil {
				return "", false, err
			}
			out.WriteString(text)
			if didExpand {
				expanded = true
			}
			i += consumed

		default:
			if isWhitespace(c) && !inDQ {
				expanded = true
			}
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), expanded, nil
}

// dollar handles a '$' found at the start of rest, returning how many
// bytes of rest it consumed and the replacement text.
func (e *Expander) dollar(rest string) (consumed int, text string, expanded bool, err error) {
	if len(rest) < 2 {
		return 1, "$", false, nil
	}

	switch {
	case rest[1] == '{':
		j := lexer.FindClosingBrace(rest[1:])
		if j == 0 {
			return 1, "$", false, nil
		}
		span := rest[1 : 1+j+1]
		result, err := e.varExpand("$" + span)
		if err != nil {
			return 0, "", false, err
		}
		return 1 + j + 1, result, true, nil

	case rest[1] == '(' && len(rest) > 2 && rest[2] == '(':
		j := lexer.FindClosingBrace(rest[1:])
		if j == 0 {
			return 1, "$", false, nil
		}
		span := rest[1 : 1+j+1]
		result, err := arith.Eval("$("+span+")", e.St)
		if err != nil {
			return 0, "", false, err
		}
		return 1 + j + 1, result, true, nil

	case rest[1] == '(':
		j := lexer.FindClosingBrace(rest[1:])
		if j == 0 {
			return 1, "$", false, nil
		}
		span := rest[1 : 1+j+1]
		cmd := span[1 : len(span)-1]
		result, err := e.CommandSubstitute("$(" + cmd + ")")
		if err != nil {
			return 0, "", false, err
		}
		return 1 + j + 1, result, true, nil

	case isNameStartByte(rest[1]):
		j := 1
		for j < len(rest) && isNameContinueByte(rest[j]) {
			j++
		}
		name := rest[1:j]
		result, err := e.varExpand("$" + name)
		if err != nil {
			return 0, "", false, err
		}
		return j, result, true, nil

	case isSpecialParamByte(rest[1]):
		result, err := e.varExpand("$" + string(rest[1]))
		if err != nil {
			return 0, "", false, err
		}
		return 2, result, true, nil
	}

	return 1, "$", false, nil
}

func (e *Expander) tildeEligible(word string, i int, inVarAssign bool, varAssignEq int) bool {
	if i == 0 {
		return true
	}
	if !inVarAssign {
		return false
	}
	prev := word[i-1]
	return prev == ':' || (prev == '=' && varAssignEq == 1)
}

func validNameLen(s string) int {
	if s == "" || !isNameStartByte(s[0]) || s[0] == '$' {
		return 0
	}
	i := 1
	for i < len(s) && isNameContinueByte(s[i]) {
		i++
	}
	return i
}

func isNameStartByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameContinueByte(c byte) bool {
	return isNameStartByte(c) || (c >= '0' && c <= '9')
}

func isSpecialParamByte(c byte) bool {
	switch c {
	case '*', '@', '#', '!', '?', '$', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// pathnamesExpand implements spec.md 4.7.6: each field containing
// glob metacharacters is replaced by its sorted filesystem matches,
// skipping any match whose basename is "." or ".."; no matches
// leaves the field unchanged.
func (e *Expander) pathnamesExpand(fields []string) []string {
	var out []string
	for _, f := range fields {
		if !pattern.HasGlobChars(f) {
			out = append(out, f)
			continue
		}

		matches := pattern.GetFilenameMatches(f)
		var kept []string
		for _, m := range matches {
			base := m
			if idx := strings.LastIndexByte(m, '/'); idx >= 0 {
				base = m[idx+1:]
			}
			if base == "." || base == ".." {
				continue
			}
			kept = append(kept, m)
		}

		if len(kept) == 0 {
			out = append(out, f)
			continue
		}
		out = append(out, kept...)
	}
	return out
}
