package main

import (
	"os"

	basic "github.com/vintagechips/ttbasic-lin"
	"github.com/vintagechips/ttbasic-lin/internal/ioerr"
)

// terminal implements basic.Terminal over a raw-mode file pair. Character
// input is fed through a background reader goroutine into a buffered
// channel so that KeyHit can poll without blocking, matching the [ESC]
// abort check basic.c's iexe performs between statements (lines 942-960).
// Output goes through an ioerr.Writer so a broken pipe on stdout (the
// terminal went away mid-session) is recorded once instead of being
// checked, and ignored, on every single PutChar.
type terminal struct {
	in   *os.File
	out  *ioerr.Writer
	keys chan byte
}

func newTerminal(in, out *os.File) *terminal {
	t := &terminal{in: in, out: ioerr.New(out), keys: make(chan byte, 256)}
	go t.readLoop()
	return t
}

func (t *terminal) readLoop() {
	var b [1]byte
	for {
		n, err := t.in.Read(b[:])
		if err != nil || n == 0 {
			close(t.keys)
			return
		}
		t.keys <- b[0]
	}
}

// Err returns the first output error encountered, if any.
func (t *terminal) Err() error { return t.out.Err }

func (t *terminal) PutChar(c byte) {
	t.out.WriteByte(c)
}

func (t *terminal) Newline() {
	t.out.WriteString("\r\n")
}

func (t *terminal) getByte() (byte, bool) {
	c, ok := <-t.keys
	return c, ok
}

// KeyHit reports a pending key without blocking.
func (t *terminal) KeyHit() (byte, bool) {
	select {
	case c, ok := <-t.keys:
		return c, ok
	default:
		return 0, false
	}
}

// ReadLine implements basic.c's c_gets (lines 204-227): each character is
// echoed as typed, TAB expands to a single space, backspace erases the
// previous character on-screen, and trailing whitespace is trimmed from
// the finished line.
func (t *terminal) ReadLine() (string, bool) {
	var buf []byte
	for {
		c, ok := t.getByte()
		if !ok {
			return "", false
		}
		switch c {
		case '\r', '\n':
			t.Newline()
			for len(buf) > 0 && (buf[len(buf)-1] == ' ' || buf[len(buf)-1] == '\t') {
				buf = buf[:len(buf)-1]
			}
			return string(buf), true

		case 8, 127: // backspace / DEL
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				t.out.Write([]byte{8, ' ', 8})
			}

		case '\t':
			if len(buf) < basic.SizeLine-1 {
				buf = append(buf, ' ')
				t.PutChar(' ')
			}

		case 3: // CTRL-C
			return "", false

		default:
			if c >= ' ' && len(buf) < basic.SizeLine-1 {
				buf = append(buf, c)
				t.PutChar(c)
			}
		}
	}
}
