// This file is part of ttbasic.

package basic

import "github.com/vintagechips/ttbasic-lin/token"

// Banner is printed once at startup, matching basic.c's basic() top-level
// loop (lines 1259-1297).
const Banner = "TOYOSHIKI TINY BASIC"

// Prompt is the startup banner's readiness line, printed once (spec.md §6).
const Prompt = "OK"

// directPrompt is the single character printed before each direct-mode
// line is read, matching basic.c's c_putch('>') in its main loop.
const directPrompt = '>'

// Repl drives the read-tokenize-store-or-execute loop: it is the part of
// basic.c's basic()/iexe() pairing that decides whether a typed line is a
// stored-program edit or something to run immediately, and formats errors
// for the terminal (error(), lines 1234-1257).
type Repl struct {
	it *Interp
}

// NewRepl returns a driver bound to it.
func NewRepl(it *Interp) *Repl { return &Repl{it: it} }

// Run prints the banner and services direct-mode lines until the
// terminal closes or a SYSTEM statement runs.
func (r *Repl) Run() {
	writeString(r.it.term, Banner)
	r.it.term.Newline()
	writeString(r.it.term, "GO EDITION")
	r.it.term.Newline()
	r.it.term.Newline()
	writeString(r.it.term, Prompt)
	r.it.term.Newline()
	for {
		r.it.term.PutChar(directPrompt)

		line, ok := r.it.term.ReadLine()
		if !ok {
			return
		}
		if exited := r.execLine(line); exited {
			return
		}
	}
}

// execLine tokenizes and either stores or runs one typed line. It returns
// true if the line ran a SYSTEM statement and the REPL should stop.
func (r *Repl) execLine(line string) bool {
	var icode [SizeIbuf]byte
	n, terr := Tokenize(line, icode[:])
	if terr != nil {
		r.printErr(terr, line)
		return false
	}
	if n == 0 {
		return false
	}

	c := Cursor{Code: icode[:n]}

	var err error
	switch c.peek() {
	case token.NUM:
		r.storeLine(&c, icode[:n], line)
		return false

	case token.NEW:
		c.next()
		r.it.Reset()
		return false

	case token.LIST:
		c.next()
		err = r.it.execList(&c)

	case token.RUN:
		err = r.it.execRun()

	default:
		err = r.it.execStatements(&c)
	}

	if err == nil {
		return false
	}
	if _, exited := err.(errSystemExit); exited {
		return true
	}
	r.reportError(err, c, line)
	return false
}

func (r *Repl) storeLine(c *Cursor, icode []byte, raw string) {
	c.next() // NUM
	lineNo := c.readCell()
	body := icode[c.IP:]

	entry := make([]byte, 3+len(body))
	entry[0] = byte(len(entry))
	entry[1] = byte(lineNo)
	entry[2] = byte(uint16(lineNo) >> 8)
	copy(entry[3:], body)

	if err := r.it.store.Insert(entry); err != nil {
		r.printErr(err, raw)
	}
}

// reportError formats a runtime error exactly as basic.c's error() (lines
// 1234-1257): a line from a stored program names its line number and
// re-lists its body ("LINE: <n> <listing>"); a direct-mode line instead
// echoes what was typed ("YOU TYPE: <raw>").
func (r *Repl) reportError(err error, c Cursor, raw string) {
	r.it.term.Newline()
	if c.InStore {
		writeString(r.it.term, "LINE:")
		writeDecimal(r.it.term, int(r.it.store.LineNoAt(c.LineOff)))
		r.it.term.PutChar(' ')
		listBody(r.it.term, r.it.store.Bytes()[c.LineOff+3:])
	} else {
		writeString(r.it.term, "YOU TYPE: ")
		writeString(r.it.term, raw)
	}
	r.it.term.Newline()
	writeString(r.it.term, err.Error())
	r.it.term.Newline()
}

// printErr reports a tokenize or store-insert error, both of which happen
// before cip ever points into the program store, so they always use the
// "YOU TYPE:" form.
func (r *Repl) printErr(err error, raw string) {
	r.it.term.Newline()
	writeString(r.it.term, "YOU TYPE: ")
	writeString(r.it.term, raw)
	r.it.term.Newline()
	writeString(r.it.term, err.Error())
	r.it.term.Newline()
}

func writeString(term Terminal, s string) {
	for i := 0; i < len(s); i++ {
		term.PutChar(s[i])
	}
}
