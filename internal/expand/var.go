package expand

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gosh-lang/gosh/internal/diag"
	"github.com/gosh-lang/gosh/internal/pattern"
	"github.com/gosh-lang/gosh/internal/symtab"
)

// varExpand implements spec.md 4.7.2: full starts with '$', possibly
// followed by a "{...}" braced body.
func (e *Expander) varExpand(full string) (string, error) {
	body := full[1:]
	braced := strings.HasPrefix(body, "{")
	if braced {
		if !strings.HasSuffix(body, "}") || len(body) < 2 {
			return "", fmt.Errorf("expand: bad substitution %q", full)
		}
		body = body[1 : len(body)-1]
	}
	return e.varExpandBody(braced, body)
}

func (e *Expander) varExpandBody(braced bool, body string) (string, error) {
	lengthMode := false

	if braced && len(body) >= 1 && body[0] == '#' {
		if len(body) >= 2 && body[1] == ':' {
			return "", fmt.Errorf("expand: bad substitution")
		}
		if len(body) >= 2 {
			lengthMode = true
			body = body[1:]
		}
	}

	if body == "" {
		return "", fmt.Errorf("expand: bad substitution")
	}

	if braced {
		for _, sep := range []string{"##", "%%", "#", "%"} {
			if idx := strings.Index(body, sep); idx > 0 {
				name := body[:idx]
				if isValidName(name) {
					pat := body[idx+len(sep):]
					return e.expandTrim(name, sep, pat)
				}
			}
		}

		if name, op, hasColon, rhs, ok := splitColonOp(body); ok {
			return e.expandDefault(name, op, hasColon, rhs, lengthMode)
		}
	}

	name := body
	entry := e.St.GetSymtabEntry(name)
	val := ""
	if entry != nil {
		val = entry.Value
	}
	flat, err := e.WordExpandToStr(val)
	if err != nil {
		return "", err
	}
	if lengthMode {
		return strconv.Itoa(len(flat)), nil
	}
	return flat, nil
}

func isValidName(s string) bool {
	if s == "" || !isNameStartByte(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isNameContinueByte(s[i]) {
			return false
		}
	}
	return true
}

// splitColonOp finds the "-=?+"-family operator in body, either in
// its colon-prefixed form (":-" etc, triggers on unset-or-empty) or
// bare form ("-" etc, triggers on unset only).
func splitColonOp(body string) (name, op string, hasColon bool, rhs string, found bool) {
	if idx := strings.IndexByte(body, ':'); idx >= 0 && idx+1 < len(body) {
		if opc := body[idx+1]; strings.IndexByte("-=?+", opc) >= 0 {
			return body[:idx], string(opc), true, body[idx+2:], true
		}
	}
	for i := 0; i < len(body); i++ {
		if strings.IndexByte("-=?+", body[i]) >= 0 {
			return body[:i], string(body[i]), false, body[i+1:], true
		}
	}
	return "", "", false, "", false
}

func (e *Expander) expandDefault(name, op string, hasColon bool, rhs string, lengthMode bool) (string, error) {
	entry := e.St.GetSymtabEntry(name)
	isUnset := entry == nil
	isEmpty := entry != nil && entry.Value == ""
	triggered := (hasColon && (isUnset || isEmpty)) || (!hasColon && isUnset)

	var result string
	var deferredAssign bool

	switch op {
	case "-":
		if triggered {
			result = rhs
		} else {
			result = entry.Value
		}
	case "=":
		if triggered {
			result = rhs
			deferredAssign = true
		} else {
			result = entry.Value
		}
	case "?":
		if triggered {
			msg := rhs
			if msg == "" {
				msg = "parameter not set"
			}
			fmt.Fprint(os.Stderr, diag.New(fmt.Sprintf("%s: %s", name, msg)).Error())
			return "", fmt.Errorf("%s: %s", name, msg)
		}
		result = entry.Value
	case "+":
		if triggered {
			result = ""
		} else {
			result = rhs
		}
	}

	flat, err := e.WordExpandToStr(result)
	if err != nil {
		return "", err
	}

	if deferredAssign {
		en := e.St.AddToSymtab(name)
		symtab.SetVal(en, flat)
	}

	if lengthMode {
		return strconv.Itoa(len(flat)), nil
	}
	return flat, nil
}

func (e *Expander) expandTrim(name, sep, pat string) (string, error) {
	entry := e.St.GetSymtabEntry(name)
	if entry == nil {
		return "", nil
	}
	val := entry.Value
	longest := sep == "##" || sep == "%%"

	if strings.HasPrefix(sep, "#") {
		m := pattern.MatchPrefix(pat, val, longest)
		return strings.TrimPrefix(val, m), nil
	}

	m := pattern.MatchSuffix(pat, val, longest)
	if m == "" {
		return val, nil
	}
	return val[:len(val)-len(m)], nil
}
