package expand

import "strings"

// RemoveQuotes implements spec.md 4.7.7: a single pass over an
// already-substituted word that strips quote marks and backslash
// escapes, leaving only the literal text they protected. Outside any
// quote, backslash escapes the following character unconditionally.
// Inside single quotes, every character is literal and backslash has
// no special meaning. Inside double quotes, only backslash followed by
// one of $ ` " \ or newline is an escape; any other backslash is kept
// literally, per the original implementation's escapable-set.
func RemoveQuotes(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	i := 0
	n := len(s)
	for i < n {
		c := s[i]
		switch c {
		case '\\':
			i++
			if i < n {
				out.WriteByte(s[i])
				i++
			}

		case '\'':
			i++
			for i < n && s[i] != '\'' {
				out.WriteByte(s[i])
				i++
			}
			if i < n {
				i++
			}

		case '"':
			i++
			for i < n && s[i] != '"' {
				if s[i] == '\\' && i+1 < n && strings.IndexByte("$`\"\\\n", s[i+1]) >= 0 {
					out.WriteByte(s[i+1])
					i += 2
					continue
				}
				out.WriteByte(s[i])
				i++
			}
			if i < n {
				i++
			}

		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String()
}

// QuoteValue implements SPEC_FULL.md 12.2's quote_val exactly:
// backslash-escapes any embedded \, `, $, or " in val, then optionally
// wraps the result in a pair of double quotes. An empty val yields a
// bare pair of double quotes (wrap) or the empty string (no wrap),
// matching quote_val's dedicated empty-string branch. Used by the dump builtin to render symbol table values
// unambiguously.
func QuoteValue(val string, wrap bool) string {
	if val == "" {
		if wrap {
			return `""`
		}
		return ""
	}

	var out strings.Builder
	out.Grow(len(val) + 2)
	if wrap {
		out.WriteByte('"')
	}
	for i := 0; i < len(val); i++ {
		switch val[i] {
		case '\\', '`', '$', '"':
			out.WriteByte('\\')
		}
		out.WriteByte(val[i])
	}
	if wrap {
		out.WriteByte('"')
	}
	return out.String()
}
