// This file is part of ttbasic.

package basic

import "github.com/vintagechips/ttbasic-lin/token"

// errSystemExit is returned by execStatements when a SYSTEM statement
// runs. It is not a BASIC error: the REPL driver recognizes it and exits
// the process cleanly instead of printing a LINE:/YOU TYPE: message.
type errSystemExit struct{}

func (errSystemExit) Error() string { return "system exit" }

// execStatements runs the single statement (or, for IF, the pair of
// statements) starting at c, then — while c remains positioned inside the
// program store — keeps advancing to the next stored line and repeating,
// exactly mirroring the interplay between basic.c's iexe (lines 942-1152)
// and irun's driving `while(*clp)` loop (lines 1154-1175). GOTO, GOSUB,
// RETURN and a continuing NEXT retarget c directly and `continue` without
// ever falling into the "advance to the next stored line" step below.
func (it *Interp) execStatements(c *Cursor) error {
	for {
		if k, hit := it.term.KeyHit(); hit && k == 27 {
			return ErrAbortESC
		}

		switch c.peek() {
		case token.GOTO:
			c.next()
			line, err := it.eval(c)
			if err != nil {
				return err
			}
			if err := it.jumpTo(c, line); err != nil {
				return err
			}
			continue

		case token.GOSUB:
			c.next()
			line, err := it.eval(c)
			if err != nil {
				return err
			}
			resume := *c
			if err := it.gosub.push(resume); err != nil {
				return err
			}
			if err := it.jumpTo(c, line); err != nil {
				return err
			}
			continue

		case token.RETURN:
			c.next()
			resume, err := it.gosub.pop()
			if err != nil {
				return err
			}
			*c = resume
			continue

		case token.FOR:
			if err := it.execFor(c); err != nil {
				return err
			}

		case token.NEXT:
			jumped, err := it.execNext(c)
			if err != nil {
				return err
			}
			if jumped {
				continue
			}

		case token.IF:
			c.next()
			cond, err := it.eval(c)
			if err != nil {
				return ErrIfWithoutCondition
			}
			if cond == 0 {
				it.skipToEOL(c)
			} else {
				continue // the statement after IF's condition runs next
			}

		case token.REM:
			c.next()
			n := c.next()
			c.IP += int(n)

		case token.STOP:
			c.next()
			if c.InStore {
				c.LineOff = it.store.terminatorOffset()
			}
			return nil

		case token.PRINT:
			if err := it.execPrint(c); err != nil {
				return err
			}

		case token.INPUT:
			if err := it.execInput(c); err != nil {
				return err
			}

		case token.LET:
			c.next()
			if err := it.execAssign(c); err != nil {
				return err
			}

		case token.VAR, token.ARRAY:
			if err := it.execAssign(c); err != nil {
				return err
			}

		case token.LIST, token.RUN, token.NEW:
			// Reachable only when they are not the first token of a
			// direct-mode line (inside a stored program, or after a
			// direct-mode IF): the REPL driver intercepts them at the start
			// of a direct-mode line and dispatches them itself, matching
			// basic.c's iexe, which has no case for them at all — icom
			// handles them before ever calling iexe.
			return ErrIllegalCommand

		case token.SYSTEM:
			return errSystemExit{}

		case token.SEMI:
			c.next()
			continue

		case token.EOL:
			// empty statement: a blank line, or the tail of a false IF.

		default:
			return ErrSyntax
		}

		if !c.atEOL() {
			return ErrSyntax
		}
		if !c.InStore {
			return nil
		}
		nextOff := c.LineOff + int(it.store.Bytes()[c.LineOff])
		if it.store.Bytes()[nextOff] == 0 {
			return nil
		}
		c.LineOff = nextOff
		c.IP = nextOff + 3
	}
}

func (it *Interp) eval(c *Cursor) (Cell, error) {
	e := evaluator{it: it, c: c}
	return e.expr()
}

// jumpTo retargets c onto the stored line numbered exactly line, failing
// with ErrUndefinedLine if no such line exists (basic.c's getlp, used by
// both GOTO and GOSUB at lines 960-985).
func (it *Interp) jumpTo(c *Cursor, line Cell) error {
	if line < 0 || line > 32766 {
		return ErrUndefinedLine
	}
	off := it.store.Find(uint16(line))
	if it.store.LineNoAt(off) != uint16(line) {
		return ErrUndefinedLine
	}
	c.Code = it.store.Bytes()
	c.InStore = true
	c.LineOff = off
	c.IP = off + 3
	return nil
}

// skipToEOL advances c.IP past the remainder of the current statement
// without executing it, honoring each token's payload width so that a
// NUM's two bytes or a STR/REM's length-prefixed body aren't misread as
// token ids.
func (it *Interp) skipToEOL(c *Cursor) {
	for {
		switch c.peek() {
		case token.EOL:
			return
		case token.NUM:
			c.next()
			c.IP += 2
		case token.VAR:
			c.next()
			c.IP++
		case token.STR, token.REM:
			c.next()
			n := c.next()
			c.IP += int(n)
		default:
			c.next()
		}
	}
}

func (it *Interp) execFor(c *Cursor) error {
	c.next() // FOR
	if c.peek() != token.VAR {
		return ErrForWithoutVariable
	}
	c.next()
	varIdx := c.next()
	if c.peek() != token.EQ {
		return ErrEqExpected
	}
	c.next()
	start, err := it.eval(c)
	if err != nil {
		return err
	}
	if c.peek() != token.TO {
		return ErrForWithoutTo
	}
	c.next()
	to, err := it.eval(c)
	if err != nil {
		return err
	}
	step := Cell(1)
	if c.peek() == token.STEP {
		c.next()
		step, err = it.eval(c)
		if err != nil {
			return err
		}
	}
	it.vars.set(varIdx, start)
	// resume sits at this line's EOL: continuing from it falls straight
	// into execStatements' "advance to the next stored line" step, which
	// is exactly the loop body's first line.
	resume := *c
	return it.forstk.push(forFrame{resume: resume, varIdx: varIdx, to: to, step: step})
}

// execNext advances the innermost FOR frame's counter and decides whether
// to loop again. basic.c adds step directly into the 16-bit counter and
// compares the (possibly wrapped) result against the bound, which means a
// loop whose counter would wrap past the 16-bit range on its final step
// (e.g. FOR I=0 TO 32767 STEP 1) never satisfies its own termination test
// and spins forever; basic.c's FOR pre-check (rejecting any step/bound
// combination that could reach that wraparound) exists only to keep that
// bug from ever firing, at the cost of forbidding loops that legitimately
// reach the 16-bit boundary. This re-implementation instead does the
// step-and-compare in widened (Go int) arithmetic before truncating the
// result back into the counter's Cell, so the termination test is correct
// at the boundary and no pre-check is needed.
func (it *Interp) execNext(c *Cursor) (bool, error) {
	c.next() // NEXT
	if c.peek() != token.VAR {
		return false, ErrNextWithoutCounter
	}
	c.next()
	varIdx := c.next()

	frame, ok := it.forstk.top()
	if !ok {
		return false, ErrNextWithoutFor
	}
	if frame.varIdx != varIdx {
		return false, ErrNextMismatchFor
	}

	next := int(it.vars.get(frame.varIdx)) + int(frame.step)

	var cont bool
	if frame.step >= 0 {
		cont = next <= int(frame.to)
	} else {
		cont = next >= int(frame.to)
	}
	it.vars.set(frame.varIdx, Cell(next))
	if cont {
		*c = frame.resume
		return true, nil
	}
	it.forstk.depth--
	return false, nil
}

func (it *Interp) execAssign(c *Cursor) error {
	switch c.peek() {
	case token.VAR:
		c.next()
		idx := c.next()
		if c.peek() != token.EQ {
			return ErrEqExpected
		}
		c.next()
		v, err := it.eval(c)
		if err != nil {
			return err
		}
		it.vars.set(idx, v)
		return nil

	case token.ARRAY:
		c.next()
		e := evaluator{it: it, c: c}
		idx, err := e.paren()
		if err != nil {
			return err
		}
		if c.peek() != token.EQ {
			return ErrEqExpected
		}
		c.next()
		v, err := it.eval(c)
		if err != nil {
			return err
		}
		return it.vars.arraySet(idx, v)

	default:
		return ErrLetWithoutVariable
	}
}

func (it *Interp) execPrint(c *Cursor) error {
	c.next() // PRINT
	if c.atEOL() {
		it.term.Newline()
		return nil
	}
	width := Cell(0) // sticky field width set by '#', matching basic.c's putnum(value, d)
	for {
		if c.peek() == token.SHARP {
			c.next()
			w, err := it.eval(c)
			if err != nil {
				return err
			}
			width = w
		} else if c.peek() == token.STR {
			c.next()
			n := int(c.next())
			for i := 0; i < n; i++ {
				it.term.PutChar(c.next())
			}
		} else {
			v, err := it.eval(c)
			if err != nil {
				return err
			}
			it.printNumber(v, width)
		}

		switch c.peek() {
		case token.COMMA:
			c.next()
			it.term.PutChar(' ')
		case token.SEMI:
			c.next()
			if c.atEOL() {
				return nil
			}
		default:
			it.term.Newline()
			return nil
		}
	}
}

// printNumber writes v in decimal, left-padded with spaces to width if the
// unpadded form (including a leading '-') is shorter, matching basic.c's
// putnum(value, d) (lines 230-257). width <= 0 means no padding.
func (it *Interp) printNumber(v Cell, width Cell) {
	n := decimalLen(int(v))
	for Cell(n) < width {
		it.term.PutChar(' ')
		n++
	}
	writeDecimal(it.term, int(v))
}

// decimalLen returns the number of characters writeDecimal would emit for v.
func decimalLen(v int) int {
	n := 1 // at least one digit, even for 0
	if v < 0 {
		n++ // sign
		v = -v
	}
	digits := 0
	for v > 0 {
		digits++
		v /= 10
	}
	if digits > 1 {
		n += digits - 1
	}
	return n
}

// execInput handles INPUT [prompt] var|@(idx) (, ...)*, grounded on
// basic.c's iinput (lines 808-864): each target prints a default prompt
// (the variable's letter or the array index, followed by ':') unless a
// STR literal immediately precedes it, in which case that string is
// printed verbatim instead.
func (it *Interp) execInput(c *Cursor) error {
	c.next() // INPUT
	for {
		var prompt func()
		if c.peek() == token.STR {
			c.next()
			n := int(c.next())
			lit := make([]byte, n)
			for i := range lit {
				lit[i] = c.next()
			}
			prompt = func() {
				for _, ch := range lit {
					it.term.PutChar(ch)
				}
			}
		}

		switch c.peek() {
		case token.VAR:
			c.next()
			idx := c.next()
			if prompt == nil {
				prompt = func() {
					it.term.PutChar('A' + idx)
					it.term.PutChar(':')
				}
			}
			prompt()
			line, ok := it.term.ReadLine()
			if !ok {
				return ErrAbortESC
			}
			v, err := parseInputNumber(line)
			if err != nil {
				return err
			}
			it.vars.set(idx, v)

		case token.ARRAY:
			c.next()
			e := evaluator{it: it, c: c}
			aidx, err := e.paren()
			if err != nil {
				return err
			}
			if prompt == nil {
				prompt = func() {
					it.term.PutChar('@')
					it.term.PutChar('(')
					writeDecimal(it.term, int(aidx))
					it.term.PutChar(')')
					it.term.PutChar(':')
				}
			}
			prompt()
			line, ok := it.term.ReadLine()
			if !ok {
				return ErrAbortESC
			}
			v, err := parseInputNumber(line)
			if err != nil {
				return err
			}
			if err := it.vars.arraySet(aidx, v); err != nil {
				return err
			}

		default:
			return ErrSyntax
		}

		switch c.peek() {
		case token.COMMA:
			c.next()
		case token.SEMI, token.EOL:
			return nil
		default:
			return ErrSyntax
		}
	}
}

// parseInputNumber parses one INPUT response, grounded on basic.c's getnum
// (lines 261-309): an optional leading sign followed by at most 5 decimal
// digits, 6 raw characters at most. Any character beyond that budget, or any
// non-digit in digit position, is silently ignored rather than rejected;
// missing digits default to 0. Overflow is the only failure this reports.
func parseInputNumber(s string) (Cell, error) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	read := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
		read++
	}
	var v Cell
	digits := 0
	for i < len(s) && read < 6 && digits < 5 {
		if !isDigit(s[i]) {
			break
		}
		d := Cell(s[i] - '0')
		nv := v*10 + d
		if nv < v {
			return 0, ErrOverflow
		}
		v = nv
		i++
		read++
		digits++
	}
	if neg {
		v = -v
	}
	return v, nil
}

// execList handles LIST and LIST <line>, matching basic.c's icom (lines
// 1217-1222): bare LIST (immediate EOL) lists everything; LIST <NUM> is
// accepted only when the NUM token's own trailing EOL sits exactly 3 bytes
// after it ([NUM, lo, hi, EOL] with nothing else), listing just that line;
// anything else — a non-NUM argument, or trailing tokens after the NUM —
// is a syntax error. There is no range ('-') syntax.
func (it *Interp) execList(c *Cursor) error {
	if c.atEOL() {
		List(it.term, it.store, 0, 32767)
		return nil
	}
	if c.peek() != token.NUM {
		return ErrSyntax
	}
	if token.ID(c.Code[c.IP+3]) != token.EOL {
		return ErrSyntax
	}
	c.next()
	lineNo := c.readCell()
	List(it.term, it.store, uint16(lineNo), uint16(lineNo))
	return nil
}

// execRun starts (or restarts) execution of the stored program from its
// first entry, matching basic.c's irun (lines 1154-1175); icom (lines
// 1224-1227) advances cip past the RUN token and never parses or honors
// any argument, so any remainder of the line is simply ignored.
func (it *Interp) execRun() error {
	it.gosub.reset()
	it.forstk.reset()

	off := it.store.Find(0)
	if it.store.Bytes()[off] == 0 {
		return nil // empty program: no-op
	}
	run := Cursor{Code: it.store.Bytes(), InStore: true, LineOff: off, IP: off + 3}
	return it.execStatements(&run)
}
