package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"jgrade.dev/pkg/jgrade/internal/domain"
	m "jgrade.dev/pkg/jgrade/internal/model"
)

const defaultZipName = "gradescope_autograder.zip"

var zipOutputFlag string

func newZipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zip [source-dir]",
		Short: "Package the autograder for upload",
		Long: `Zip the contents of ./autograder/source (or source-dir) into
gradescope_autograder.zip in the working directory. __pycache__ and .git
directories are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := filepath.Join(defaultAutograderDir, "source")
			if len(args) == 1 {
				source = args[0]
			}

			return wrapUnexpected(workflow.Zip(cmd.Context(), domain.ZipArgs{
				Source: m.Path(source),
				Output: m.Path(zipOutputFlag),
			}))
		},
	}

	cmd.Flags().StringVarP(&zipOutputFlag, "output", "o", defaultZipName, "archive to write")

	return cmd
}
