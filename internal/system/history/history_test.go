//go:build unix

package history

import (
	"bytes"
	"io"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	called := false

	err := Load(func(r io.Reader) (int, error) {
		called = true
		return 0, nil
	})
	if err != nil {
		t.Fatalf("expected no error for a missing file; got %v", err)
	}

	if called {
		t.Fatalf("read should not be called for a missing file")
	}
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	const lines = "H2 + O2 -> H2O\nN2 + H2 -> NH3\n"

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, lines)
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	var b bytes.Buffer

	err = Load(func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)
		return int(n), err
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if b.String() != lines {
		t.Fatalf("expected %q; got %q", lines, b.String())
	}
}
