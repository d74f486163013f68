// This file is part of ttbasic.

package basic

import "github.com/vintagechips/ttbasic-lin/token"

// evaluator implements the recursive-descent expression grammar from
// basic.c's getparam/ivalue/imul/iplus/iexp (lines 578-765):
//
//	expr   := addExpr (relOp addExpr)*
//	addExpr:= mulExpr (('+'|'-') mulExpr)*
//	mulExpr:= value (('*'|'/') value)*
//	value  := ('+'|'-') value | NUM | VAR | '@' '(' expr ')' |
//	          RND '(' expr ')' | ABS '(' expr ')' | SIZE '(' ')' | '(' expr ')'
//
// Relational operators are left-associative and produce 1 (true) or 0
// (false), exactly as the reference implementation's iexp, so a chain such
// as A<B<C folds as (A<B)<C.
type evaluator struct {
	it *Interp
	c  *Cursor
}

func (e *evaluator) expr() (Cell, error) {
	lhs, err := e.addExpr()
	if err != nil {
		return 0, err
	}
	for {
		var op token.ID
		switch e.c.peek() {
		case token.GTE, token.GT, token.EQ, token.LTE, token.LT, token.SHARP:
			op = e.c.peek()
			e.c.next()
		default:
			return lhs, nil
		}
		rhs, err := e.addExpr()
		if err != nil {
			return 0, err
		}
		var result bool
		switch op {
		case token.GTE:
			result = lhs >= rhs
		case token.GT:
			result = lhs > rhs
		case token.EQ:
			result = lhs == rhs
		case token.LTE:
			result = lhs <= rhs
		case token.LT:
			result = lhs < rhs
		case token.SHARP:
			result = lhs != rhs
		}
		if result {
			lhs = 1
		} else {
			lhs = 0
		}
	}
}

func (e *evaluator) addExpr() (Cell, error) {
	v, err := e.mulExpr()
	if err != nil {
		return 0, err
	}
	for {
		switch e.c.peek() {
		case token.PLUS:
			e.c.next()
			rhs, err := e.mulExpr()
			if err != nil {
				return 0, err
			}
			v += rhs
		case token.MINUS:
			e.c.next()
			rhs, err := e.mulExpr()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (e *evaluator) mulExpr() (Cell, error) {
	v, err := e.value()
	if err != nil {
		return 0, err
	}
	for {
		switch e.c.peek() {
		case token.MUL:
			e.c.next()
			rhs, err := e.value()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case token.DIV:
			e.c.next()
			rhs, err := e.value()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, ErrDivByZero
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (e *evaluator) paren() (Cell, error) {
	if e.c.peek() != token.OPEN {
		return 0, ErrParenExpected
	}
	e.c.next()
	v, err := e.expr()
	if err != nil {
		return 0, err
	}
	if e.c.peek() != token.CLOSE {
		return 0, ErrParenExpected
	}
	e.c.next()
	return v, nil
}

func (e *evaluator) value() (Cell, error) {
	switch e.c.peek() {
	case token.PLUS:
		e.c.next()
		return e.value()

	case token.MINUS:
		e.c.next()
		v, err := e.value()
		if err != nil {
			return 0, err
		}
		return -v, nil

	case token.NUM:
		e.c.next()
		return e.c.readCell(), nil

	case token.VAR:
		e.c.next()
		idx := e.c.next()
		return e.it.vars.get(idx), nil

	case token.ARRAY:
		e.c.next()
		idx, err := e.paren()
		if err != nil {
			return 0, err
		}
		return e.it.vars.arrayGet(idx)

	case token.RND:
		e.c.next()
		n, err := e.paren()
		if err != nil {
			return 0, err
		}
		if n <= 0 {
			return 0, ErrSubscript
		}
		return Cell(e.it.rnd.Intn(int(n))) + 1, nil

	case token.ABS:
		e.c.next()
		v, err := e.paren()
		if err != nil {
			return 0, err
		}
		if v < 0 {
			v = -v
		}
		return v, nil

	case token.SIZE:
		e.c.next()
		if e.c.peek() != token.OPEN {
			return 0, ErrParenExpected
		}
		e.c.next()
		if e.c.peek() != token.CLOSE {
			return 0, ErrParenExpected
		}
		e.c.next()
		return Cell(e.it.store.GetSize()), nil

	case token.OPEN:
		return e.paren()

	default:
		return 0, ErrSyntax
	}
}
