// This file is part of ttbasic.

package basic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func evalExpr(t *testing.T, it *Interp, expr string) Cell {
	t.Helper()
	var buf [SizeIbuf]byte
	n, err := Tokenize(expr, buf[:])
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", expr, err)
	}
	c := Cursor{Code: buf[:n]}
	v, err := it.eval(&c)
	if err != nil {
		t.Fatalf("eval(%q): %v", expr, err)
	}
	return v
}

func TestEvalArithmeticPrecedence(t *testing.T) {
	it, _ := newTestInterp()
	cases := map[string]Cell{
		"2+3*4":   14,
		"(2+3)*4": 20,
		"10-4-3":  3,
		"-5+2":    -3,
		"7/2":     3,
	}
	for expr, want := range cases {
		if got := evalExpr(t, it, expr); got != want {
			t.Errorf("%s = %d, want %d", expr, got, want)
		}
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	it, _ := newTestInterp()
	var buf [SizeIbuf]byte
	n, _ := Tokenize("1/0", buf[:])
	c := Cursor{Code: buf[:n]}
	if _, err := it.eval(&c); err != ErrDivByZero {
		t.Fatalf("1/0: got %v, want ErrDivByZero", err)
	}
}

func TestEvalAdditionWrapsLikeInt16(t *testing.T) {
	it, _ := newTestInterp()
	// 32767 + 1 wraps to -32768, matching the reference implementation's
	// `short` arithmetic: overflow is only an explicit error for literals
	// and DIV by zero, never for +, - or *.
	if got := evalExpr(t, it, "32767+1"); got != -32768 {
		t.Fatalf("32767+1 = %d, want -32768 (wraparound)", got)
	}
}

func TestEvalRelationalOperators(t *testing.T) {
	it, _ := newTestInterp()
	cases := map[string]Cell{
		"1=1":  1,
		"1=2":  0,
		"3>2":  1,
		"2>3":  0,
		"2>=2": 1,
		"2<=1": 0,
		"1#2":  1,
		"2#2":  0,
	}
	for expr, want := range cases {
		got := evalExpr(t, it, expr)
		require.Equalf(t, want, got, "%s", expr)
	}
}

func TestEvalAbsAndSize(t *testing.T) {
	it, _ := newTestInterp()
	if got := evalExpr(t, it, "ABS(-5)"); got != 5 {
		t.Fatalf("ABS(-5) = %d, want 5", got)
	}
	if got := evalExpr(t, it, "SIZE()"); got != Cell(it.store.GetSize()) {
		t.Fatalf("SIZE() = %d, want %d", got, it.store.GetSize())
	}
}

func TestEvalArrayAndVariable(t *testing.T) {
	it, _ := newTestInterp()
	it.vars.set(0, 7) // A
	if err := it.vars.arraySet(3, 42); err != nil {
		t.Fatal(err)
	}
	if got := evalExpr(t, it, "A"); got != 7 {
		t.Fatalf("A = %d, want 7", got)
	}
	if got := evalExpr(t, it, "@(3)"); got != 42 {
		t.Fatalf("@(3) = %d, want 42", got)
	}
}
