// This file is part of ttbasic.

package basic

import (
	"testing"

	"github.com/vintagechips/ttbasic-lin/token"
)

// entry builds a store entry for lineNo whose body is body followed by the
// closing EOL, so entry(n) with no body bytes is the 4-byte delete form.
func entry(lineNo uint16, body ...byte) []byte {
	e := make([]byte, 3+len(body)+1)
	e[0] = byte(len(e))
	e[1] = byte(lineNo)
	e[2] = byte(lineNo >> 8)
	copy(e[3:], body)
	e[len(e)-1] = byte(token.EOL)
	return e
}

func TestStoreInsertOrdersByLineNumber(t *testing.T) {
	s := NewStore(64)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(s.Insert(entry(20, 1, 2)))
	must(s.Insert(entry(10, 3, 4)))
	must(s.Insert(entry(30, 5, 6)))

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	off := uint16(0)
	for o := 0; s.Bytes()[o] != 0; o += int(s.Bytes()[o]) {
		ln := s.LineNoAt(o)
		if ln <= off {
			t.Fatalf("lines not in ascending order: %d after %d", ln, off)
		}
		off = ln
	}
}

func TestStoreReplaceExistingLine(t *testing.T) {
	s := NewStore(64)
	if err := s.Insert(entry(10, 1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Insert(entry(10, 9, 9, 9)); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (replace, not append)", s.Len())
	}
}

func TestStoreDeleteByEmptyBody(t *testing.T) {
	s := NewStore(64)
	if err := s.Insert(entry(10, 1, 2, 3)); err != nil {
		t.Fatal(err)
	}
	if err := s.Insert(entry(10)); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after delete", s.Len())
	}
}

func TestStoreFindReturnsTerminatorWhenAbsent(t *testing.T) {
	s := NewStore(64)
	if err := s.Insert(entry(10, 1)); err != nil {
		t.Fatal(err)
	}
	off := s.Find(9999)
	if s.Bytes()[off] != 0 {
		t.Fatalf("expected terminator offset when no line >= lineNo, got entry length %d", s.Bytes()[off])
	}
}

// TestStoreGetSizeBoundary is the B2 boundary: inserting a line when
// remaining free space exactly equals its length succeeds; one byte less
// fails with ErrListFull.
func TestStoreGetSizeBoundary(t *testing.T) {
	s := NewStore(8) // terminator at 0 to start; free = 8 - 0 - 1 = 7
	e := entry(10, 1, 2, 3)
	if len(e) != 7 {
		t.Fatalf("test setup: entry length = %d, want 7", len(e))
	}
	if err := s.Insert(e); err != nil {
		t.Fatalf("insert exactly filling the store should succeed: %v", err)
	}

	s2 := NewStore(7)
	if err := s2.Insert(e); err != ErrListFull {
		t.Fatalf("insert exceeding the store should fail with ErrListFull, got %v", err)
	}
}

// TestStoreReplaceWithLargerBodyReusesFreedSpace exercises the exact
// ordering basic.c's inslist depends on: the old entry's space must be
// freed before the new entry's size is checked against what remains, or a
// same-line replacement that grows the body would fail to fit even when
// the store has enough total room.
func TestStoreReplaceWithLargerBodyReusesFreedSpace(t *testing.T) {
	s := NewStore(10) // free = 10 - 0 - 1 = 9
	if err := s.Insert(entry(10, 1)); err != nil {
		t.Fatal(err)
	}
	// Replacement body is longer than the original but still fits only if
	// the original's 5 bytes are reclaimed first (4 < 8, but once the old
	// entry is freed, free space goes back to 9).
	bigger := entry(10, 1, 2, 3, 4)
	if len(bigger) != 8 {
		t.Fatalf("test setup: entry length = %d, want 8", len(bigger))
	}
	if err := s.Insert(bigger); err != nil {
		t.Fatalf("replacing a line with a larger body should reuse its freed space: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (replace, not append)", s.Len())
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore(64)
	if err := s.Insert(entry(10, 1)); err != nil {
		t.Fatal(err)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", s.Len())
	}
	if s.GetSize() != s.Cap()-1 {
		t.Fatalf("GetSize() = %d after Clear, want %d", s.GetSize(), s.Cap()-1)
	}
}
