// This file is part of ttbasic.

package basic

// gosubFrame is a GOSUB return point: the full cursor to resume at on
// RETURN, not just a pair of raw pointers, so that a GOSUB issued from a
// direct-mode line can RETURN back into that same scratch buffer (spec.md
// §9 design note on replacing basic.c's gstk/gstki pointer-pair stack,
// lines 190-196, with explicit records).
type gosubFrame struct {
	resume Cursor
}

type gosubStack struct {
	frames [MaxGosub]gosubFrame
	depth  int
}

func (s *gosubStack) push(resume Cursor) error {
	if s.depth >= len(s.frames) {
		return ErrGosubNested
	}
	s.frames[s.depth] = gosubFrame{resume: resume}
	s.depth++
	return nil
}

func (s *gosubStack) pop() (Cursor, error) {
	if s.depth == 0 {
		return Cursor{}, ErrReturnUnderflow
	}
	s.depth--
	return s.frames[s.depth].resume, nil
}

func (s *gosubStack) reset() { s.depth = 0 }

// forFrame is one FOR/NEXT loop frame: the variable under control, its
// bound and step, and the cursor to resume at when the loop continues
// (the statement immediately after the FOR's own NEXT-bound body start),
// grounded on basic.c's lstk/lstki/lvar arrays (lines 190-196, 1000-1060).
type forFrame struct {
	resume Cursor
	varIdx byte
	to     Cell
	step   Cell
}

type forStack struct {
	frames [MaxFor]forFrame
	depth  int
}

func (s *forStack) push(f forFrame) error {
	if s.depth >= len(s.frames) {
		return ErrForNested
	}
	s.frames[s.depth] = f
	s.depth++
	return nil
}

// top returns the innermost frame, used by NEXT to check the loop variable
// against basic.c's lvar[lvp-1] (lines 1030-1050).
func (s *forStack) top() (forFrame, bool) {
	if s.depth == 0 {
		return forFrame{}, false
	}
	return s.frames[s.depth-1], true
}

func (s *forStack) reset() { s.depth = 0 }
