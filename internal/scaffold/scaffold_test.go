package scaffold_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jgrade.dev/pkg/jgrade/internal/scaffold"
)

func TestFS(t *testing.T) {
	fsys := scaffold.FS()

	for _, name := range []string{
		"source/tests.yaml",
		"source/Main.java",
		"source/setup.sh",
		"source/run_autograder",
		"submission/Main.java",
	} {
		t.Run(name, func(t *testing.T) {
			data, err := fs.ReadFile(fsys, name)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}
