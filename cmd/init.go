package cmd

import (
	"github.com/spf13/cobra"

	"jgrade.dev/pkg/jgrade/internal/domain"
	m "jgrade.dev/pkg/jgrade/internal/model"
	"jgrade.dev/pkg/jgrade/internal/scaffold"
)

const defaultAutograderDir = "autograder"

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Create an example autograder",
		Long: `Write an example autograder to ./autograder (or dir): a reference
solution, a suite file and the Gradescope setup.sh and run_autograder scripts
under source/, plus a sample submission under submission/. Existing files
with the same names are overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination := defaultAutograderDir
			if len(args) == 1 {
				destination = args[0]
			}

			return wrapUnexpected(workflow.Init(cmd.Context(), domain.InitArgs{
				Template:    scaffold.FS(),
				Destination: m.Path(destination),
			}))
		},
	}
}
