package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/michaelmacinnis/balance/internal/balance"
)

func TestScript(t *testing.T) {
	input := `H2 + O2 -> H2O

Fe +Cr->
N2 + H2 -> NH3
H2 + O2 -> NaCl
`

	var stdout, stderr bytes.Buffer

	status := script("test", strings.NewReader(input), &stdout, &stderr, &balancer{})
	if status != 1 {
		t.Fatalf("expected status 1; got %d", status)
	}

	expected := "2 H2 + O2 -> 2 H2O\nN2 + 3 H2 -> 2 NH3\n"
	if stdout.String() != expected {
		t.Fatalf("expected %q; got %q", expected, stdout.String())
	}

	errs := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors; got %q", stderr.String())
	}

	if !strings.HasPrefix(errs[0], "test:3: invalid unbalanced chemical equation") {
		t.Fatalf("unexpected error %q", errs[0])
	}

	if !strings.HasPrefix(errs[1], "test:5: balance: element missing on side") {
		t.Fatalf("unexpected error %q", errs[1])
	}
}

func TestScriptCompact(t *testing.T) {
	var stdout, stderr bytes.Buffer

	b := &balancer{opts: []balance.Option{balance.WithCompact()}}

	status := script("test", strings.NewReader("O3 -> O2\n"), &stdout, &stderr, b)
	if status != 0 {
		t.Fatalf("expected status 0; got %d: %s", status, stderr.String())
	}

	if stdout.String() != "2O3 -> 3O2\n" {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}
