// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive prompt's line history.
package history

import (
	"io"
	"os"
)

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save passes the truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
