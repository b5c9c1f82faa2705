// Released under an MIT license. See LICENSE.

// Package ui provides an interactive prompt for balancing equations.
package ui

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/michaelmacinnis/balance/internal/reader/lexer"
	"github.com/michaelmacinnis/balance/internal/system/history"
	"github.com/peterh/liner"
)

// Example is shown when the prompt starts.
const Example = "Cu + HNO3 -> Cu(NO3)2 + NO + H2O"

// Balancer is the interface for things that balance equations.
type Balancer interface {
	Balance(equation string) (string, error)
}

// Run prompts for equations and prints each balanced equation until the
// user enters EOF. Ctrl-C abandons the current line.
func Run(b Balancer) {
	cli := liner.NewLiner()

	err := history.Load(cli.ReadHistory)
	if err != nil {
		log.Println("history:", err)
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(complete)

	fmt.Fprint(os.Stdout, Banner())

	for {
		line, err := cli.Prompt(">>> ")
		if err == liner.ErrPromptAborted {
			continue
		} else if err != nil {
			if err != io.EOF {
				log.Println(err)
			}

			os.Stdout.Write([]byte("\n"))

			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		Print(os.Stdout, os.Stderr, b, line)
	}

	err = history.Save(cli.WriteHistory)
	if err != nil {
		log.Println("history:", err)
	}

	err = cli.Close()
	if err != nil {
		log.Println(err)
	}
}

// Banner returns the text shown when the prompt starts.
func Banner() string {
	return "Input unbalanced equation.\nex. \033[0;33m" + Example + "\033[0m\n"
}

// Print balances line and writes the result to stdout or the error to stderr.
// It returns false if the equation could not be balanced.
func Print(stdout, stderr io.Writer, b Balancer, line string) bool {
	s, err := b.Balance(line)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return false
	}

	fmt.Fprintln(stdout, s)

	return true
}

func complete(s string, n int) (h string, cs []string, t string) {
	h = s[:n]
	t = s[n:]

	l := lexer.New("complete")

	l.Scan(h)

	for l.Token() != nil {
	}

	for _, e := range l.Expected() {
		if strings.HasSuffix(h, " ") {
			e = strings.TrimLeft(e, " ")
		}

		cs = append(cs, e)
	}

	return
}
