package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jgrade.dev/pkg/jgrade/internal/adapter"
	"jgrade.dev/pkg/jgrade/internal/domain"
	m "jgrade.dev/pkg/jgrade/internal/model"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [results.json]",
		Short: "Show the summary of a written report",
		Long:  "Print the summary table of a results.json file, by default the one in --results-dir.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(viper.GetString(resultsDirKey), adapter.ResultsFileName)
			if len(args) == 1 {
				path = args[0]
			}

			return wrapUnexpected(workflow.View(cmd.Context(), domain.ViewArgs{Path: m.Path(path)}))
		},
	}
}
