// This file is part of ttbasic.

// Package basic implements the core of TOYOSHIKI TinyBASIC: a
// tokenize-store-execute engine for a minimal, line-numbered BASIC dialect.
//
// A source line is compressed by the tokenizer into a compact byte stream
// ("i-code", package token) built from a 35-entry keyword table plus NUM,
// VAR, STR and EOL payload tokens. Lines that start with a line number are
// kept in a single contiguous byte buffer (the program store), sorted by
// ascending line number, with edit-in-place insert/replace/delete
// semantics. Lines without a leading number are executed immediately
// ("direct mode"). RUN drives the statement executor across the stored
// program in line-number order, honoring GOTO/GOSUB/FOR/NEXT control
// transfers via two small bounded stacks.
//
// This package has no opinion on how characters reach it: the REPL driver
// (Repl) is handed a Terminal implementation (raw single-character I/O,
// line editing, non-blocking key poll) and a Rand implementation (for the
// RND() builtin) by its caller. See cmd/ttbasic for a concrete terminal
// backed by raw tty mode.
package basic

// Cell is the machine word: a 16-bit value manipulated with ordinary
// wraparound arithmetic, exactly as the reference implementation's `short`
// does on overflow for +, - and *. The valid range for stored variables,
// array cells and literals is [-32767, 32767]; DIV by zero and numeric
// literal overflow are the only arithmetic conditions that fail explicitly
// rather than wrapping.
type Cell = int16

// Reference-point sizes from the original implementation (spec.md §2/§3).
const (
	SizeLine  = 80   // command line buffer length, including the NUL
	SizeIbuf  = 80   // i-code scratch buffer capacity, including the EOL
	SizeList  = 1024 // program store capacity in bytes
	SizeArray = 64   // array cell count
	MaxGosub  = 3     // GOSUB stack depth, in (line, icode) pairs
	MaxFor    = 3     // FOR stack depth, in frames
)
