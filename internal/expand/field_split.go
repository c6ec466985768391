package expand

import "strings"

const defaultIFS = " \t\n"

func isIFSWhitespace(c byte, ifs string) bool {
	return (c == ' ' || c == '\t' || c == '\n') && strings.IndexByte(ifs, c) >= 0
}

// fieldSplit implements spec.md 4.7.5: read $IFS (default " \t\n" if
// unset, no splitting if explicitly empty), skip leading IFS
// whitespace, then walk the input honoring quote state (no splitting
// inside a quoted span; backslash outside single quotes protects the
// next character), treating each run of
// (IFS-whitespace)*(one IFS-delimiter)?(IFS-whitespace)* as a single
// field boundary. Reaching the end of input always closes whatever
// field is currently open (SPEC_FULL.md 13.3), mirroring the source's
// i==len implicit-delimiter behavior with an explicit check.
func (e *Expander) fieldSplit(s string) []string {
	ifs := defaultIFS
	if entry := e.St.GetSymtabEntry("IFS"); entry != nil {
		ifs = entry.Value
	}
	if ifs == "" {
		return []string{s}
	}

	n := len(s)
	i := 0
	for i < n && isIFSWhitespace(s[i], ifs) {
		i++
	}
	if i >= n {
		return nil
	}

	var fields []string
	var cur strings.Builder
	var inQuote byte

	for i <= n {
		atEnd := i == n
		var c byte
		if !atEnd {
			c = s[i]
		}

		if !atEnd && inQuote != 0 {
			cur.WriteByte(c)
			i++
			if c == '\\' && inQuote != '\'' && i < n {
				cur.WriteByte(s[i])
				i++
			} else if c == inQuote {
				inQuote = 0
			}
			continue
		}

		if !atEnd && (c == '\'' || c == '"' || c == '`') {
			inQuote = c
			cur.WriteByte(c)
			i++
			continue
		}

		if !atEnd && c == '\\' {
			cur.WriteByte(c)
			i++
			if i < n {
				cur.WriteByte(s[i])
				i++
			}
			continue
		}

		isDelim := !atEnd && strings.IndexByte(ifs, c) >= 0

		if atEnd || isDelim {
			fields = append(fields, cur.String())
			cur.Reset()
			if atEnd {
				break
			}

			if isIFSWhitespace(c, ifs) {
				i++
				for i < n && isIFSWhitespace(s[i], ifs) {
					i++
				}
				if i < n && strings.IndexByte(ifs, s[i]) >= 0 && !isIFSWhitespace(s[i], ifs) {
					i++
					for i < n && isIFSWhitespace(s[i], ifs) {
						i++
					}
				}
			} else {
				i++
				for i < n && isIFSWhitespace(s[i], ifs) {
					i++
				}
			}
			continue
		}

		cur.WriteByte(c)
		i++
	}

	return fields
}
