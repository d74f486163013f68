// This file is part of ttbasic.

package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchKeywords(t *testing.T) {
	cases := []struct {
		in   string
		want ID
		n    int
	}{
		{"GOTO 10", GOTO, 4},
		{"goto 10", GOTO, 4},
		{">=5", GTE, 2},
		{">5", GT, 1},
		{"PRINT", PRINT, 5},
		{"RUN", RUN, 3},
	}
	for _, c := range cases {
		id, n, ok := Match([]byte(c.in))
		require.True(t, ok, "Match(%q): no match", c.in)
		require.Equal(t, c.want, id, "Match(%q) id", c.in)
		require.Equal(t, c.n, n, "Match(%q) consumed length", c.in)
	}
}

func TestMatchNoMatch(t *testing.T) {
	if _, _, ok := Match([]byte("X")); ok {
		t.Fatalf("Match(%q): expected no match for a bare variable letter", "X")
	}
}

func TestKeywordRoundTrip(t *testing.T) {
	for i := 0; i < KeywordCount; i++ {
		id := ID(i)
		kw := Keyword(id)
		if kw == "" {
			t.Fatalf("Keyword(%d) empty", i)
		}
		got, n, ok := Match([]byte(kw))
		if !ok || got != id || n != len(kw) {
			t.Errorf("round-trip failed for %q: got (%v, %d, %v)", kw, got, n, ok)
		}
	}
}

func TestSpacingTables(t *testing.T) {
	if !NoSpaceAfter(COMMA) {
		t.Error("COMMA should suppress trailing space")
	}
	if NoSpaceAfter(PRINT) {
		t.Error("PRINT should not suppress trailing space")
	}
	if !NoSpaceBefore(EOL) {
		t.Error("EOL should suppress a preceding space")
	}
}
