// Released under an MIT license. See LICENSE.

/*
Balance balances chemical equations.

	$ balance -c 'K4Fe(SCN)6 + K2Cr2O7 + H2SO4 -> Fe2(SO4)3 + Cr2(SO4)3 + CO2 + H2O + K2SO4 + KNO3'
	6 K4Fe(SCN)6 + 97 K2Cr2O7 + 355 H2SO4 -> 3 Fe2(SO4)3 + 97 Cr2(SO4)3 + 36 CO2 + 355 H2O + 91 K2SO4 + 36 KNO3

Run without arguments at a terminal, balance prompts for equations.
Otherwise it balances each line read from stdin.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/michaelmacinnis/balance/internal/balance"
	"github.com/michaelmacinnis/balance/internal/matrix"
	"github.com/michaelmacinnis/balance/internal/system/options"
	"github.com/michaelmacinnis/balance/internal/ui"
)

type balancer struct {
	opts []balance.Option
}

func (b *balancer) Balance(s string) (string, error) {
	return balance.Balance(s, b.opts...)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("balance: ")

	options.Parse()

	b := &balancer{}

	if options.Compact() {
		b.opts = append(b.opts, balance.WithCompact())
	}

	if options.Matrix() {
		b.opts = append(b.opts, balance.WithTrace(func(m *matrix.T) {
			fmt.Fprintln(os.Stderr, m)
		}))
	}

	if options.Retry() {
		b.opts = append(b.opts, balance.WithRetry())
	}

	if c := options.Command(); c != "" {
		if !ui.Print(os.Stdout, os.Stderr, b, c) {
			os.Exit(1)
		}

		return
	}

	if options.Interactive() {
		ui.Run(b)

		return
	}

	os.Exit(script("stdin", os.Stdin, os.Stdout, os.Stderr, b))
}

// script balances each non-blank line read from r. Errors are reported with
// the line number and do not stop processing. It returns the exit status.
func script(name string, r io.Reader, stdout, stderr io.Writer, b ui.Balancer) int {
	status := 0

	s := bufio.NewScanner(r)

	for n := 1; s.Scan(); n++ {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		out, err := b.Balance(line)
		if err != nil {
			fmt.Fprintf(stderr, "%s:%d: %v\n", name, n, err)

			status = 1

			continue
		}

		fmt.Fprintln(stdout, out)
	}

	if err := s.Err(); err != nil {
		log.Println(err)

		return 1
	}

	return status
}
