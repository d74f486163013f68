// This file is part of ttbasic.

package basic

import (
	"github.com/vintagechips/ttbasic-lin/token"
)

// Tokenize compiles a single source line into i-code, writing it into buf
// from its start and returning the number of bytes written (always ending
// in a single EOL byte); it fails with ErrIcodeBufFull if buf is too small. It is grounded on basic.c's toktoi (lines 313-439), replacing its
// in-place ibuf/ip pointer walk with a plain byte-slice scan.
//
// Payload encodings, matching the reference implementation's packing:
//   - NUM:  token id byte, then the value as two little-endian bytes.
//   - VAR:  token id byte, then one byte: 0-25 for A-Z.
//   - STR:  token id byte, then a length byte, then that many raw bytes
//     (the string's content; either a single or double quote may delimit
//     it, and the delimiter itself is stripped).
//   - REM:  keyword id byte, then a length byte, then that many raw bytes
//     (the remainder of the line, verbatim); REM is the last token on the
//     line, so no EOL follows its payload within the statement body, but
//     Tokenize still appends the closing EOL.
func Tokenize(line string, buf []byte) (int, error) {
	n := 0
	emit := func(b byte) error {
		if n >= len(buf) {
			return ErrIcodeBufFull
		}
		buf[n] = b
		n++
		return nil
	}

	s := []byte(line)
	i := 0
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}

		if id, consumed, ok := token.Match(s[i:]); ok {
			if err := emit(byte(id)); err != nil {
				return 0, err
			}
			i += consumed

			if id == token.REM {
				for i < len(s) && isSpace(s[i]) {
					i++
				}
				payload := s[i:]
				if len(payload) > 255 {
					payload = payload[:255]
				}
				if err := emit(byte(len(payload))); err != nil {
					return 0, err
				}
				for _, c := range payload {
					if err := emit(c); err != nil {
						return 0, err
					}
				}
				i = len(s)
			}
			continue
		}

		c := s[i]
		switch {
		case isDigit(c):
			var v Cell
			overflow := false
			for i < len(s) && isDigit(s[i]) {
				d := Cell(s[i] - '0')
				nv := v*10 + d
				if nv < v {
					overflow = true
				}
				v = nv
				i++
			}
			if overflow {
				return 0, ErrOverflow
			}
			if err := emit(byte(token.NUM)); err != nil {
				return 0, err
			}
			if err := emit(byte(v)); err != nil {
				return 0, err
			}
			if err := emit(byte(v >> 8)); err != nil {
				return 0, err
			}

		case c == '"' || c == '\'':
			delim := c
			i++
			start := i
			for i < len(s) && s[i] != delim {
				i++
			}
			payload := s[start:i]
			if i < len(s) {
				i++ // closing delimiter
			}
			if len(payload) > 255 {
				return 0, ErrSyntax
			}
			if err := emit(byte(token.STR)); err != nil {
				return 0, err
			}
			if err := emit(byte(len(payload))); err != nil {
				return 0, err
			}
			for _, ch := range payload {
				if err := emit(ch); err != nil {
					return 0, err
				}
			}

		case isAlphaUpper(c):
			// A bare letter not matched as part of a longer keyword is a
			// scalar variable reference. Two adjacent letters with no
			// operator between them ("AB") is not a valid variable name
			// (variables are always a single letter) and is a syntax error.
			if i+1 < len(s) && isAlphaUpper(s[i+1]) {
				return 0, ErrSyntax
			}
			if err := emit(byte(token.VAR)); err != nil {
				return 0, err
			}
			up := c
			if up >= 'a' && up <= 'z' {
				up -= 32
			}
			if err := emit(up - 'A'); err != nil {
				return 0, err
			}
			i++

		default:
			return 0, ErrSyntax
		}
	}

	if err := emit(byte(token.EOL)); err != nil {
		return 0, err
	}
	return n, nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlphaUpper(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
