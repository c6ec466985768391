package arith

import (
	"strconv"

	"github.com/gosh-lang/gosh/internal/symtab"
)

// Operand is the arithmetic stack's tagged item: either a bare long
// value or a reference to a symbol-table entry (the lvalue case),
// per spec.md's "Arithmetic Stacks" data model.
type Operand struct {
	entry *symtab.Entry
	val   int64
}

// Long dereferences either variant to a long value. An lvalue whose
// entry holds an empty or non-numeric string reads as 0, matching
// shell arithmetic's treatment of unset/non-numeric variables.
func (o Operand) Long() int64 {
	if o.entry == nil {
		return o.val
	}
	v, err := strconv.ParseInt(o.entry.Value, 0, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsLvalue reports whether o references a symbol-table entry.
func (o Operand) IsLvalue() bool {
	return o.entry != nil
}

// Assign writes v back to o's entry, if it is an lvalue. A no-op
// otherwise.
func (o Operand) Assign(v int64) {
	if o.entry == nil {
		return
	}
	symtab.SetVal(o.entry, strconv.FormatInt(v, 10))
}

func value(v int64) Operand {
	return Operand{val: v}
}

func lvalue(e *symtab.Entry) Operand {
	return Operand{entry: e}
}
