package builtins

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/gosh-lang/gosh/internal/expand"
	"github.com/gosh-lang/gosh/internal/symtab"
)

// dumpBuiltin implements dump_local_symtab verbatim, including its
// \r\n line endings, fixed-width columns, and literal single-quote
// value markers, writing to stderr. Unlike the original, which writes
// entry->val raw between those quotes, the value is first run through
// expand.QuoteValue(val, false) so embedded backslashes, backticks,
// dollars, and double quotes can't be mistaken for part of the
// surrounding column formatting. A "--json" argument switches to the
// SPEC_FULL.md 12.5 structured variant instead: a JSON array of
// {name, value, exported} objects built with sjson, written to
// stdout. The default stderr text is unaffected either way.
func dumpBuiltin(argv []string, st *symtab.Stack, stdout, stderr *os.File) int {
	asJSON := false
	for _, a := range argv[1:] {
		if a == "--json" {
			asJSON = true
		}
	}

	if asJSON {
		return dumpJSON(st, stdout)
	}

	indent := strings.Repeat(" ", st.Level()*4)

	fmt.Fprintf(stderr, "%sSymbol table [Level %d]:\r\n", indent, st.Level())
	fmt.Fprintf(stderr, "%s===========================\r\n", indent)
	fmt.Fprintf(stderr, "%s  No               Symbol                    Val\r\n", indent)
	fmt.Fprintf(stderr, "%s------ -------------------------------- ------------\r\n", indent)

	i := 0
	st.Range(func(e *symtab.Entry) bool {
		fmt.Fprintf(stderr, "%s[%04d] %-32s '%s'\r\n", indent, i, e.Name, expand.QuoteValue(e.Value, false))
		i++
		return true
	})

	fmt.Fprintf(stderr, "%s------ -------------------------------- ------------\r\n", indent)

	return 0
}

func dumpJSON(st *symtab.Stack, out *os.File) int {
	doc := "[]"
	var err error

	i := 0
	st.Range(func(e *symtab.Entry) bool {
		prefix := fmt.Sprintf("%d", i)
		doc, err = sjson.Set(doc, prefix+".name", e.Name)
		if err != nil {
			return false
		}
		doc, err = sjson.Set(doc, prefix+".value", e.Value)
		if err != nil {
			return false
		}
		doc, err = sjson.Set(doc, prefix+".exported", e.Exported)
		if err != nil {
			return false
		}
		i++
		return true
	})
	if err != nil {
		fmt.Fprintf(out, "error: %s\n", err)
		return 1
	}

	fmt.Fprintln(out, doc)
	return 0
}
