// Package diag adapts internal/errors/errors.go's CompilerError into
// this project's diagnostic contract: spec.md 6/7 mandate a plain
// "error: <detail>\n" line on stderr for every user-facing failure,
// with no caret-pointer source rendering in the default path. The
// caret rendering survives here as an explicit opt-in (FormatPretty)
// that no CLI command calls, so it never changes the default contract
// other packages and tests depend on.
package diag

import (
	"fmt"
	"strings"
)

// Position locates a byte offset within a source string as a 1-based
// line and column, matching the teacher's lexer.Position shape.
type Position struct {
	Line   int
	Column int
}

// Diagnostic is a single reported failure.
type Diagnostic struct {
	Message string
	Source  string
	Pos     Position
}

// New creates a Diagnostic with no position information (the common
// case: most of this shell's errors, e.g. a failed fork or an unset
// required parameter, have no single source span to point at).
func New(message string) *Diagnostic {
	return &Diagnostic{Message: message}
}

// NewAt creates a Diagnostic carrying a source position, for callers
// that can name one. The tokenizer and the arithmetic evaluator report
// their errors without a position and do not call it.
func NewAt(message, source string, pos Position) *Diagnostic {
	return &Diagnostic{Message: message, Source: source, Pos: pos}
}

// Error implements the error interface with the plain, default
// contract: "error: <message>\n".
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("error: %s\n", d.Message)
}

// FormatPretty renders the caret-pointer view original_source never
// had cause to produce (its errors are one-line fprintf calls), but
// which internal/errors/errors.go's CompilerError offers as a debug
// aid. No CLI command or flag calls it; every error path prints
// Error().
func (d *Diagnostic) FormatPretty() string {
	if d.Pos.Line == 0 {
		return d.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error at line %d:%d\n", d.Pos.Line, d.Pos.Column)

	if line := sourceLine(d.Source, d.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(d.Message)
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// PositionOf computes the 1-based line/column of byte offset off
// within source, scanning for newlines. It is for callers that only
// track a byte offset (internal/source.Source.Pos) but want a
// FormatPretty-ready Position.
func PositionOf(source string, off int) Position {
	if off < 0 || off > len(source) {
		off = len(source)
	}
	line := 1
	col := 1
	for i := 0; i < off; i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col}
}
