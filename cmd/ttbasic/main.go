// Command ttbasic is an interactive TOYOSHIKI TinyBASIC session, reading
// from stdin and writing to stdout. Grounded on cmd/retro/main.go's flag
// setup, raw-IO teardown and error-reporting pattern.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	basic "github.com/vintagechips/ttbasic-lin"
)

func main() {
	noRawIO := flag.Bool("noraw", false, "disable raw terminal IO")
	storeSize := flag.Int("storesize", basic.SizeList, "program store size in bytes")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for RND()")
	flag.Parse()

	var tearDown func()
	if !*noRawIO {
		var err error
		tearDown, err = setRawIO()
		if err != nil {
			fmt.Fprintf(os.Stderr, "raw IO unavailable: %v\n", err)
		}
	}
	if tearDown != nil {
		defer tearDown()
	}

	term := newTerminal(os.Stdin, os.Stdout)
	it := basic.New(term,
		basic.WithStoreCapacity(*storeSize),
		basic.WithRand(rand.New(rand.NewSource(*seed))),
	)
	basic.NewRepl(it).Run()

	if err := term.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
}
