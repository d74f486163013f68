// This file is part of ttbasic.

package basic

import "github.com/vintagechips/ttbasic-lin/token"

// List writes the stored lines whose line numbers fall in [from, to] to
// term, one per line, decoding i-code back into source text. Grounded on
// basic.c's putlist (lines 509-576), including its i_nsa/i_nsb-driven
// spacing rules (now token.NoSpaceAfter/NoSpaceBefore).
func List(term Terminal, s *Store, from, to uint16) {
	buf := s.Bytes()
	off := s.Find(from)
	for buf[off] != 0 {
		lineNo := s.LineNoAt(off)
		if lineNo > to {
			break
		}
		next := off + int(buf[off])
		writeDecimal(term, int(lineNo))
		term.PutChar(' ')
		listBody(term, buf[off+3:next])
		term.Newline()
		off = next
	}
}

func listBody(term Terminal, body []byte) {
	ip := 0
	for ip < len(body) {
		id := token.ID(body[ip])
		if id == token.EOL {
			break
		}
		switch id {
		case token.NUM:
			ip++
			v := int(body[ip]) | int(body[ip+1])<<8
			if v >= 1<<15 {
				v -= 1 << 16
			}
			ip += 2
			writeDecimal(term, v)
			if ip < len(body) && !token.NoSpaceBefore(token.ID(body[ip])) {
				term.PutChar(' ')
			}
			continue

		case token.VAR:
			ip++
			idx := body[ip]
			ip++
			term.PutChar('A' + idx)
			if ip < len(body) && !token.NoSpaceBefore(token.ID(body[ip])) {
				term.PutChar(' ')
			}
			continue

		case token.STR:
			ip++
			n := int(body[ip])
			ip++
			payload := body[ip : ip+n]
			quote := byte('"')
			for _, ch := range payload {
				if ch == '"' {
					quote = '\''
					break
				}
			}
			term.PutChar(quote)
			for _, ch := range payload {
				term.PutChar(ch)
			}
			ip += n
			term.PutChar(quote)
			// Unlike every other token, STR only ever gets a trailing space
			// when directly followed by VAR (basic.c's putlist, lines
			// 559-568); it does not consult the shared NSA/NSB rules below.
			if ip < len(body) && token.ID(body[ip]) == token.VAR {
				term.PutChar(' ')
			}
			continue

		case token.REM:
			ip++
			n := int(body[ip])
			ip++
			for i := 0; i < len(token.Keyword(token.REM)); i++ {
				term.PutChar(token.Keyword(token.REM)[i])
			}
			if !token.NoSpaceAfter(token.REM) {
				term.PutChar(' ')
			}
			for i := 0; i < n; i++ {
				term.PutChar(body[ip+i])
			}
			return // REM always ends the line

		default:
			kw := token.Keyword(id)
			for i := 0; i < len(kw); i++ {
				term.PutChar(kw[i])
			}
			ip++
			// A keyword's trailing space is suppressed only by its own NSA
			// membership, never by what follows it (basic.c's putlist,
			// lines 513-528: "if (!nospacea(tkn)) putch(' ');" unconditional).
			if !token.NoSpaceAfter(id) {
				term.PutChar(' ')
			}
		}
	}
}

// writeDecimal prints v in decimal, with a leading '-' if negative.
func writeDecimal(term Terminal, v int) {
	if v < 0 {
		term.PutChar('-')
		v = -v
	}
	if v == 0 {
		term.PutChar('0')
		return
	}
	var digits [6]byte
	n := 0
	for v > 0 {
		digits[n] = byte('0' + v%10)
		v /= 10
		n++
	}
	for i := n - 1; i >= 0; i-- {
		term.PutChar(digits[i])
	}
}
