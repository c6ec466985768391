// Package symtab implements the shell's scope stack, grounded on
// original_source/part5/symtab/symtab.c: a bounded stack of scopes,
// each scope an insertion-ordered sequence of named entries. Lookup
// walks the stack top to bottom; assignment only ever targets an
// entry already found by that walk or newly created in the local
// (topmost) scope.
//
// Entry values are always strings here: spec.md's Symbol Table Entry
// data model allows a "function-body" value variant, but spec.md's
// Non-goals exclude shell functions entirely, so that variant has no
// producer in this project and is not represented.
package symtab

import "fmt"

// MaxLevels bounds the scope stack, matching MAX_SYMTAB in symtab.h.
const MaxLevels = 256

// Entry is one binding within a scope.
type Entry struct {
	Name     string
	Value    string
	Exported bool
	next     *Entry
}

// scope is an insertion-ordered sequence of entries at one level.
type scope struct {
	level int
	head  *Entry
	tail  *Entry
}

func (s *scope) find(name string) *Entry {
	for e := s.head; e != nil; e = e.next {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (s *scope) append(e *Entry) {
	if s.tail == nil {
		s.head = e
		s.tail = e
		return
	}
	s.tail.next = e
	s.tail = e
}

func (s *scope) remove(e *Entry) bool {
	var prev *Entry
	for cur := s.head; cur != nil; cur = cur.next {
		if cur == e {
			if prev == nil {
				s.head = cur.next
			} else {
				prev.next = cur.next
			}
			if s.tail == cur {
				s.tail = prev
			}
			return true
		}
		prev = cur
	}
	return false
}

// Stack is the process-wide scope stack. The zero value is not
// usable; construct with New, which creates the global scope.
type Stack struct {
	scopes []*scope
}

// New creates a Stack with a single global scope at level 0.
func New() *Stack {
	s := &Stack{scopes: make([]*scope, 0, MaxLevels)}
	s.scopes = append(s.scopes, &scope{level: 0})
	return s
}

// Push creates a new local scope one level above the current top.
// Panics if the stack is already at MaxLevels, mirroring the
// source's fatal-error-on-exhaustion contract for symbol-table
// allocation (spec.md 7).
func (s *Stack) Push() {
	if len(s.scopes) >= MaxLevels {
		panic(fmt.Sprintf("symtab: exceeded max scope depth (%d)", MaxLevels))
	}
	top := s.scopes[len(s.scopes)-1]
	s.scopes = append(s.scopes, &scope{level: top.level + 1})
}

// Pop removes the topmost scope. A no-op if only the global scope
// remains, since spec.md requires index 0 (global) to always exist.
func (s *Stack) Pop() {
	if len(s.scopes) <= 1 {
		return
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Level reports the topmost scope's level (0 for the global scope
// alone).
func (s *Stack) Level() int {
	return s.scopes[len(s.scopes)-1].level
}

func (s *Stack) local() *scope {
	return s.scopes[len(s.scopes)-1]
}

func (s *Stack) global() *scope {
	return s.scopes[0]
}

// AddToSymtab returns the local scope's entry named name, creating an
// empty one if absent. The returned entry is stable until explicitly
// removed or its scope popped.
func (s *Stack) AddToSymtab(name string) *Entry {
	local := s.local()
	if e := local.find(name); e != nil {
		return e
	}
	e := &Entry{Name: name}
	local.append(e)
	return e
}

// AddGlobal is AddToSymtab against the global scope regardless of
// the current local scope, used by Initialization (spec.md 4.10).
func (s *Stack) AddGlobal(name string) *Entry {
	g := s.global()
	if e := g.find(name); e != nil {
		return e
	}
	e := &Entry{Name: name}
	g.append(e)
	return e
}

// DoLookup searches only the local scope.
func (s *Stack) DoLookup(name string) *Entry {
	return s.local().find(name)
}

// GetSymtabEntry walks the stack top to bottom, returning the first
// binding found.
func (s *Stack) GetSymtabEntry(name string) *Entry {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if e := s.scopes[i].find(name); e != nil {
			return e
		}
	}
	return nil
}

// RemFromSymtab unlinks e from the local scope, reporting whether it
// was present.
func (s *Stack) RemFromSymtab(e *Entry) bool {
	return s.local().remove(e)
}

// SetVal replaces e's value.
func SetVal(e *Entry, value string) {
	e.Value = value
}

// Range calls f for every entry in the local (topmost) scope, in
// insertion order, stopping early if f returns false. Used by the
// dump builtin (SPEC_FULL.md 12.5, original_source symtab.c
// dump_local_symtab).
func (s *Stack) Range(f func(*Entry) bool) {
	for e := s.local().head; e != nil; e = e.next {
		if !f(e) {
			return
		}
	}
}
