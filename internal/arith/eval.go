// Package arith implements the Shunting-Yard arithmetic evaluator
// from original_source/part5/shunt.c: a tagged operand stack (long
// value or symbol-table lvalue), the full C-family operator set, and
// base-2..64 integer literals.
package arith

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gosh-lang/gosh/internal/symtab"
)

// MaxOpStack and MaxNumStack bound the two stacks, matching
// MAXOPSTACK/MAXNUMSTACK in shunt.c.
const (
	MaxOpStack  = 64
	MaxNumStack = 64
)

type stackOp struct {
	sym   string
	paren bool
}

// evaluator drives the two-stack Shunting-Yard reduction described in
// spec.md 4.8.
type evaluator struct {
	st      *symtab.Stack
	operand []Operand
	operOp  []stackOp
}

func (e *evaluator) pushOperand(o Operand) error {
	if len(e.operand) >= MaxNumStack {
		return fmt.Errorf("arith: operand stack overflow")
	}
	e.operand = append(e.operand, o)
	return nil
}

func (e *evaluator) popOperand() (Operand, error) {
	if len(e.operand) == 0 {
		return Operand{}, fmt.Errorf("arith: operand stack underflow")
	}
	n := len(e.operand) - 1
	o := e.operand[n]
	e.operand = e.operand[:n]
	return o, nil
}

func (e *evaluator) pushOp(op stackOp) error {
	if len(e.operOp) >= MaxOpStack {
		return fmt.Errorf("arith: operator stack overflow")
	}
	e.operOp = append(e.operOp, op)
	return nil
}

func (e *evaluator) popOp() (stackOp, bool) {
	if len(e.operOp) == 0 {
		return stackOp{}, false
	}
	n := len(e.operOp) - 1
	op := e.operOp[n]
	e.operOp = e.operOp[:n]
	return op, true
}

func (e *evaluator) topOp() (stackOp, bool) {
	if len(e.operOp) == 0 {
		return stackOp{}, false
	}
	return e.operOp[len(e.operOp)-1], true
}

// applyOne pops one operator off the operator stack and applies it to
// operands from the operand stack, pushing the result back.
func (e *evaluator) applyOne() error {
	op, ok := e.popOp()
	if !ok || op.paren {
		return fmt.Errorf("arith: stack error. no matching '('")
	}

	info, ok := ops[op.sym]
	if !ok {
		return fmt.Errorf("arith: unknown operator %q", op.sym)
	}

	args := make([]Operand, info.arity)
	for i := int(info.arity) - 1; i >= 0; i-- {
		v, err := e.popOperand()
		if err != nil {
			return err
		}
		args[i] = v
	}

	result, err := info.apply(args)
	if err != nil {
		return err
	}
	return e.pushOperand(result)
}

// shuntOp pushes op onto the operator stack, first popping and
// applying any operators it binds tighter than, per the Shunting-Yard
// rule in spec.md 4.8.
func (e *evaluator) shuntOp(sym string) error {
	info, ok := ops[sym]
	if !ok {
		return fmt.Errorf("arith: unknown operator %q", sym)
	}

	for {
		top, ok := e.topOp()
		if !ok || top.paren {
			break
		}
		topInfo := ops[top.sym]
		pops := topInfo.prec > info.prec || (topInfo.prec == info.prec && !info.rightAssoc)
		if !pops {
			break
		}
		if err := e.applyOne(); err != nil {
			return err
		}
	}

	return e.pushOp(stackOp{sym: sym})
}

func (e *evaluator) run(toks []tok) error {
	for _, t := range toks {
		switch t.kind {
		case tokNum:
			if err := e.pushOperand(value(t.num)); err != nil {
				return err
			}

		case tokName:
			entry := e.st.AddToSymtab(t.name)
			if err := e.pushOperand(lvalue(entry)); err != nil {
				return err
			}

		case tokLParen:
			if err := e.pushOp(stackOp{paren: true}); err != nil {
				return err
			}

		case tokRParen:
			for {
				top, ok := e.topOp()
				if !ok {
					return fmt.Errorf("arith: stack error. no matching '('")
				}
				if top.paren {
					e.popOp()
					break
				}
				if err := e.applyOne(); err != nil {
					return err
				}
			}

		case tokOp:
			if t.op == "post++" || t.op == "post--" {
				top, err := e.popOperand()
				if err != nil {
					return err
				}
				result, err := applyPostfix(t.op, top)
				if err != nil {
					return err
				}
				if err := e.pushOperand(result); err != nil {
					return err
				}
				continue
			}
			if err := e.shuntOp(t.op); err != nil {
				return err
			}
		}
	}

	for len(e.operOp) > 0 {
		if err := e.applyOne(); err != nil {
			return err
		}
	}

	if len(e.operand) != 1 {
		return fmt.Errorf("arith: malformed expression")
	}
	return nil
}

// Eval evaluates expr (optionally wrapped as "$((...))" — the wrapper
// is stripped if present) against st, returning the decimal string of
// the single remaining operand. An empty expression returns "", nil.
func Eval(expr string, st *symtab.Stack) (string, error) {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "$((") && strings.HasSuffix(expr, "))") {
		expr = expr[3 : len(expr)-2]
	}
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", nil
	}

	toks, err := tokenize(expr)
	if err != nil {
		return "", err
	}
	if len(toks) == 0 {
		return "", nil
	}

	e := &evaluator{st: st}
	if err := e.run(toks); err != nil {
		return "", err
	}

	return strconv.FormatInt(e.operand[0].Long(), 10), nil
}
