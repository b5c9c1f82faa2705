// Released under an MIT license. See LICENSE.

//go:build unix

package history

import (
	"os"
	"path"
)

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(path.Join(os.Getenv("HOME"), ".balance_history"))
}
