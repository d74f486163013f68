// This file is part of ttbasic.

package basic

import (
	"strings"
	"testing"
)

func TestReplStoresAndRunsProgram(t *testing.T) {
	term := &fakeTerminal{lines: []string{
		`10 FOR A=1 TO 3`,
		`20 PRINT A`,
		`30 NEXT A`,
		`RUN`,
		`SYSTEM`,
	}}
	it := New(term)
	NewRepl(it).Run()

	out := string(term.out)
	if !strings.Contains(out, "1\n2\n3\n") {
		t.Fatalf("output %q does not contain the FOR loop's printed counters", out)
	}
}

func TestReplSyntaxErrorIsReportedNotFatal(t *testing.T) {
	term := &fakeTerminal{lines: []string{
		`PRINT +`,
		`PRINT 5`,
		`SYSTEM`,
	}}
	it := New(term)
	NewRepl(it).Run()

	out := string(term.out)
	if !strings.Contains(out, ErrSyntax.Error()) {
		t.Fatalf("output %q should report the syntax error", out)
	}
	if !strings.Contains(out, "5") {
		t.Fatalf("output %q should still execute the line after the error", out)
	}
}

func TestReplDirectLineBypassesStore(t *testing.T) {
	term := &fakeTerminal{lines: []string{
		`PRINT 1+1`,
		`SYSTEM`,
	}}
	it := New(term)
	NewRepl(it).Run()
	if !strings.Contains(string(term.out), "2\n") {
		t.Fatalf("direct-mode PRINT did not execute: %q", term.out)
	}
}
