// Package cmd provides the root command and CLI setup for jgrade.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"jgrade.dev/pkg/jgrade/internal/adapter"
	"jgrade.dev/pkg/jgrade/internal/controller"
	"jgrade.dev/pkg/jgrade/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var compiler adapter.CompilerAdapter
var processRunner adapter.ProcessRunnerAdapter
var linter adapter.LinterAdapter
var scorerRunner adapter.ScorerRunnerAdapter
var reportStore adapter.ReportStore
var archiver adapter.ArchiveAdapter
var suiteLoader domain.SuiteLoader
var aggregator domain.Aggregator
var styleChecker domain.StyleChecker
var workflow domain.Workflow
var ui controller.UI

var sourceDirFlag string
var submissionDirFlag string
var resultsDirFlag string
var logFileFlag string
var verboseFlag bool

const reportProblemHint = "An unexpected error occurred. Please report it to the jgrade maintainers with the message above and the steps to reproduce it."

func init() {
	rootCmd = newRootCmd()
	rootCmd.AddCommand(
		newRunCmd(),
		newInitCmd(),
		newZipCmd(),
		newViewCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	compiler = adapter.NewLocalCompilerAdapter(viper.GetString(javacKey))
	processRunner = adapter.NewLocalProcessRunnerAdapter(viper.GetString(javaKey))
	linter = adapter.NewCheckstyleAdapter(viper.GetString(javaKey))
	scorerRunner = adapter.NewLocalScorerRunnerAdapter()
	reportStore = adapter.NewReportStore()
	archiver = adapter.NewLocalArchiveAdapter()
	suiteLoader = domain.NewSuiteLoader(fsAdapter, scorerRunner)
	aggregator = domain.NewAggregator(processRunner, domain.NewDiffEvaluator())
	styleChecker = domain.NewStyleChecker(fsAdapter, linter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		compiler,
		reportStore,
		archiver,
		ui,
		suiteLoader,
		aggregator,
		styleChecker,
	)
}

const rootLongDescription = `jgrade grades a Java submission against a reference solution.

Both programs are compiled and run with the arguments of every test in the
suite file. Outputs are compared exactly or with a configured scorer, an
optional Checkstyle pass scores code style, and the result is written as a
Gradescope results.json.

Settings come from flags, JGRADE_* environment variables (a .env file is
loaded first) and an optional jgrade.yaml in the working directory.`

// rootCmd represents the base command when called without any subcommands.
// It is built in init so flag defaults see the loaded configuration.
var rootCmd *cobra.Command

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "jgrade",
		Short:        "Differential autograder for Java assignments",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&sourceDirFlag, sourceDirFlagName, viper.GetString(sourceDirKey), "directory holding the reference solution and the suite file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sourceDirFlagName), sourceDirKey)

	cmd.PersistentFlags().StringVar(&submissionDirFlag, submissionDirFlagName, viper.GetString(submissionDirKey), "directory holding the student submission")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(submissionDirFlagName), submissionDirKey)

	cmd.PersistentFlags().StringVar(&resultsDirFlag, resultsDirFlagName, viper.GetString(resultsDirKey), "directory results.json is written to")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(resultsDirFlagName), resultsDirKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// wrapUnexpected leaves configuration problems as they are and asks for a
// bug report on anything else.
func wrapUnexpected(err error) error {
	if err == nil || domain.IsConfigurationError(err) {
		return err
	}

	return fmt.Errorf("%w\n\n%s", err, reportProblemHint)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
