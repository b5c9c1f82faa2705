// Released under an MIT license. See LICENSE.

// Package options parses balance's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by balance -v.
const Version = "balance 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	compact     bool
	interactive bool
	matrix      bool
	retry       bool
	usage       = `balance

Usage:
  balance [-mnr] -c EQUATION
  balance [-imnr]
  balance -h
  balance -v

Options:
  -c, --command=EQUATION  Balance the specified equation.
  -i, --interactive       Invert interactive mode.
  -m, --matrix            Print each seeded matrix to stderr before solving.
  -n, --compact           Write coefficients without a following space.
  -r, --retry             Seed other unknowns if the first seed fails.
  -h, --help              Display this help.
  -v, --version           Print balance version.

If balance's stdin is a TTY, and balance was invoked without -c, balance
prompts for equations interactively. Otherwise, it balances one equation
per line read from stdin.
`
)

// Command returns the equation passed with -c, if any.
func Command() string {
	return command
}

// Compact returns true if coefficients should be written without a space.
func Compact() bool {
	return compact
}

// Interactive returns true if balance should prompt for equations.
func Interactive() bool {
	return interactive
}

// Matrix returns true if seeded matrices should be printed.
func Matrix() bool {
	return matrix
}

// Parse parses os.Args. It exits after printing help or the version.
func Parse() {
	err := parse(docopt.DefaultParser, nil, isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}
}

// Retry returns true if other seeds should be tried when the first fails.
func Retry() bool {
	return retry
}

func parse(p *docopt.Parser, argv []string, tty bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")

	interactive = command == "" && tty

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	compact, _ = opts.Bool("--compact")
	matrix, _ = opts.Bool("--matrix")
	retry, _ = opts.Bool("--retry")

	return nil
}
