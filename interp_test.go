// This file is part of ttbasic.

package basic

// fakeTerminal is an in-memory Terminal used by tests in place of the raw
// tty backend in cmd/ttbasic, mirroring the teacher's vm_test.go pattern
// of a tiny hand-rolled I/O stub instead of a tty.
type fakeTerminal struct {
	out   []byte
	lines []string
	pos   int
}

func (f *fakeTerminal) PutChar(c byte) { f.out = append(f.out, c) }
func (f *fakeTerminal) Newline()       { f.out = append(f.out, '\n') }

func (f *fakeTerminal) ReadLine() (string, bool) {
	if f.pos >= len(f.lines) {
		return "", false
	}
	line := f.lines[f.pos]
	f.pos++
	return line, true
}

func (f *fakeTerminal) KeyHit() (byte, bool) { return 0, false }

func newTestInterp(lines ...string) (*Interp, *fakeTerminal) {
	term := &fakeTerminal{lines: lines}
	it := New(term)
	return it, term
}

// runLine tokenizes and executes a single direct-mode line, returning any
// tokenize or execution error to the caller.
func runLine(it *Interp, line string) error {
	var buf [SizeIbuf]byte
	n, err := Tokenize(line, buf[:])
	if err != nil {
		return err
	}
	c := Cursor{Code: buf[:n]}
	return it.execStatements(&c)
}
