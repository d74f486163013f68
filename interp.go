// This file is part of ttbasic.

package basic

// Terminal is the I/O collaborator the REPL driver and the PRINT/INPUT
// statement handlers call into (spec.md's C1 terminal contract). It is
// satisfied by a raw-mode tty backend in cmd/ttbasic, but tests can supply
// a buffer-backed fake.
type Terminal interface {
	// PutChar writes a single output byte.
	PutChar(c byte)
	// Newline writes a line break.
	Newline()
	// ReadLine blocks for one edited input line (no trailing newline) and
	// reports io.EOF-style termination via ok == false.
	ReadLine() (line string, ok bool)
	// KeyHit polls for a pending key without blocking; used to service
	// [ESC] abort during RUN.
	KeyHit() (c byte, pressed bool)
}

// Rand supplies the RND() builtin; satisfied by *rand.Rand.
type Rand interface {
	Intn(n int) int
}

// Interp is one TinyBASIC machine: its variables, program store, control
// stacks and I/O collaborators. Grounded on vm.New's functional-options
// constructor shape (vm/vm.go), replacing the Ngaro image/data/address
// sizing options with TinyBASIC's own tunables.
type Interp struct {
	vars   vars
	store  *Store
	gosub  gosubStack
	forstk forStack
	rnd    Rand
	term   Terminal
}

// Option configures an Interp at construction time.
type Option func(*Interp)

// WithRand overrides the RND() source; the default is unseeded and
// produces Intn(1), i.e. always 0, so tests get deterministic RND(n)==1
// unless they opt in to real randomness.
func WithRand(r Rand) Option {
	return func(it *Interp) { it.rnd = r }
}

// WithStoreCapacity overrides the program store's byte capacity (default
// SizeList).
func WithStoreCapacity(n int) Option {
	return func(it *Interp) { it.store = NewStore(n) }
}

type zeroRand struct{}

func (zeroRand) Intn(n int) int { return 0 }

// New builds an Interp bound to term, applying opts in order.
func New(term Terminal, opts ...Option) *Interp {
	it := &Interp{
		store: NewStore(SizeList),
		rnd:   zeroRand{},
		term:  term,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Reset clears variables, the control stacks and the program store,
// matching basic.c's inew (lines 1214-1220).
func (it *Interp) Reset() {
	it.vars.reset()
	it.gosub.reset()
	it.forstk.reset()
	it.store.Clear()
}
