package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jgrade.dev/pkg/jgrade/internal/domain"
)

const (
	timeoutFlagName        = "timeout"
	compileFailureFlagName = "compile-failure"
	extraDataFlagName      = "extra-data"
	styleParallelFlagName  = "style-parallel"
	styleJarFlagName       = "style-jar"
)

const runLongDescription = `Grade the submission with the suite file found under the source directory.

The suite file argument is matched as a path suffix below --source-dir and
must identify exactly one file (default: tests.yaml). The report is written
to <results-dir>/results.json.`

var runTimeoutFlag float64
var runCompileFailureFlag string
var runExtraDataFlag bool
var runStyleParallelFlag int
var runStyleJarFlag string

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [suite-file]",
		Short: "Grade a submission",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suiteName := domain.DefaultSuiteFile
			if len(args) == 1 {
				suiteName = args[0]
			}

			rc, err := runContextFromConfig(suiteName)
			if err != nil {
				return err
			}

			return wrapUnexpected(workflow.Run(cmd.Context(), rc))
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&runTimeoutFlag, timeoutFlagName, "t", viper.GetFloat64(defaultTimeoutKey), "default submission timeout in seconds for tests without one (0 disables)")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), defaultTimeoutKey)

	cmd.Flags().StringVar(&runCompileFailureFlag, compileFailureFlagName, viper.GetString(compileFailureKey), "what a submission compile failure does: fatal or report")
	bindFlagToConfig(cmd.Flags().Lookup(compileFailureFlagName), compileFailureKey)

	cmd.Flags().BoolVar(&runExtraDataFlag, extraDataFlagName, viper.GetBool(extraDataKey), "include raw outputs in extra_data of every test")
	bindFlagToConfig(cmd.Flags().Lookup(extraDataFlagName), extraDataKey)

	cmd.Flags().IntVarP(&runStyleParallelFlag, styleParallelFlagName, "p", viper.GetInt(styleParallelKey), "number of concurrent Checkstyle runs")
	bindFlagToConfig(cmd.Flags().Lookup(styleParallelFlagName), styleParallelKey)

	cmd.Flags().StringVar(&runStyleJarFlag, styleJarFlagName, viper.GetString(styleJarKey), "Checkstyle jar, absolute or looked up under the source directory")
	bindFlagToConfig(cmd.Flags().Lookup(styleJarFlagName), styleJarKey)
}
