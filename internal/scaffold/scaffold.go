// Package scaffold holds the example autograder written by `jgrade init`.
package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed all:autograder
var files embed.FS

// FS returns the example autograder tree rooted at its top directory, so it
// contains source/ and submission/.
func FS() fs.FS {
	sub, err := fs.Sub(files, "autograder")
	if err != nil {
		panic(err)
	}

	return sub
}
