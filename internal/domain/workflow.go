package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"jgrade.dev/pkg/jgrade/internal/adapter"
	"jgrade.dev/pkg/jgrade/internal/controller"
	m "jgrade.dev/pkg/jgrade/internal/model"
)

const javacNotFoundMessage = "Java compiler (javac) not found. Please ensure you selected in Gradescope a base image variant with Java installed."

// ArchiveSkipDirs are left out of autograder archives.
var ArchiveSkipDirs = []string{"__pycache__", ".git"}

// ViewArgs contains the arguments for displaying an existing report.
type ViewArgs struct {
	Path m.Path
}

// InitArgs contains the arguments for scaffolding an autograder.
type InitArgs struct {
	Template    fs.FS
	Destination m.Path
}

// ZipArgs contains the arguments for packaging an autograder.
type ZipArgs struct {
	Source m.Path
	Output m.Path
}

// Workflow defines the grading workflow and its companion commands.
type Workflow interface {
	// Run grades the submission described by rc and writes results.json.
	Run(ctx context.Context, rc m.RunContext) error
	View(ctx context.Context, args ViewArgs) error
	Init(ctx context.Context, args InitArgs) error
	Zip(ctx context.Context, args ZipArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.CompilerAdapter
	adapter.ReportStore
	adapter.ArchiveAdapter
	controller.UI
	SuiteLoader
	Aggregator
	StyleChecker
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	compiler adapter.CompilerAdapter,
	reportStore adapter.ReportStore,
	archiver adapter.ArchiveAdapter,
	ui controller.UI,
	loader SuiteLoader,
	aggregator Aggregator,
	styleChecker StyleChecker,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		CompilerAdapter: compiler,
		ReportStore:     reportStore,
		ArchiveAdapter:  archiver,
		UI:              ui,
		SuiteLoader:     loader,
		Aggregator:      aggregator,
		StyleChecker:    styleChecker,
	}
}

func (w *workflow) Run(ctx context.Context, rc m.RunContext) error {
	start := time.Now()
	runID := uuid.NewString()
	logger := slog.With("run_id", runID)

	logger.Info("Starting grading run", "source", rc.SourceDir, "submission", rc.SubmissionDir, "results", rc.ResultsDir,
		"compile_failure", rc.CompileFailure)

	suitePath, err := w.resolve(rc.SuiteName, rc.SourceDir)
	if err != nil {
		logger.Error("Failed to locate suite file", "error", err)
		return err
	}

	suite, err := w.Load(suitePath)
	if err != nil {
		logger.Error("Failed to load suite", "path", suitePath, "error", err)
		return err
	}

	reference, err := w.resolve(suite.EntryPoint, rc.SourceDir)
	if err != nil {
		return err
	}

	submission, err := w.resolve(suite.EntryPoint, rc.SubmissionDir)
	if err != nil {
		return err
	}

	classpath := ""

	if suite.Classpath != "" {
		resolved, err := w.resolve(suite.Classpath, rc.SourceDir)
		if err != nil {
			return err
		}

		classpath = string(resolved)
	}

	w.DisplayRunInfo(ctx, controller.RunInfo{
		RunID: runID,
		Suite: suitePath,
		Tests: len(suite.Tests),
		Style: suite.Style != nil,
	})

	results, elapsed, err := w.runTests(ctx, rc, suite, reference, submission, classpath)
	if err != nil {
		logger.Error("Grading failed", "error", err)
		return err
	}

	styleResult, err := w.checkStyle(ctx, rc, suite.Style)
	if err != nil {
		logger.Error("Style check failed", "error", err)
		return err
	}

	if styleResult != nil {
		results = append(results, *styleResult)
		w.DisplayTestResult(ctx, len(results)-1, *styleResult)
	}

	report := m.Report{ExecutionTime: elapsed.Seconds(), Tests: results}

	path, err := w.SaveReport(rc.ResultsDir, report)
	if err != nil {
		logger.Error("Failed to save report", "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	score, maxScore := report.Totals()
	logger.Info("Grading run finished", "report", path, "score", score, "max_score", maxScore, "duration", time.Since(start))

	return nil
}

func (w *workflow) runTests(ctx context.Context, rc m.RunContext, suite m.Suite, reference, submission m.Path, classpath string) ([]m.TestResult, time.Duration, error) {
	if err := w.Compile(ctx, reference, classpath); err != nil {
		return nil, 0, compileFailure("reference solution", err)
	}

	err := w.Compile(ctx, submission, classpath)

	var compileErr *adapter.CompileError

	switch {
	case err == nil:
	case rc.CompileFailure == m.CompileFailureReport && errors.As(err, &compileErr):
		slog.Warn("Submission did not compile", "exit_code", compileErr.ExitCode)

		results := CompileFailureResults(suite.Tests, compileErr.Diagnostics)
		for i, result := range results {
			w.DisplayTestResult(ctx, i, result)
		}

		return results, 0, nil
	default:
		return nil, 0, compileFailure("submission", err)
	}

	elapsed, results, err := w.Aggregator.Run(ctx, AggregateArgs{
		Tests:          suite.Tests,
		Reference:      reference,
		Submission:     submission,
		DefaultTimeout: rc.DefaultTimeout,
		ExtraData:      rc.ExtraData,
		OnResult: func(index int, result m.TestResult) {
			w.DisplayTestResult(ctx, index, result)
		},
	})
	if err != nil {
		return nil, 0, err
	}

	return results, elapsed, nil
}

func (w *workflow) checkStyle(ctx context.Context, rc m.RunContext, config *m.StyleCheckConfig) (*m.TestResult, error) {
	if config == nil {
		return nil, nil
	}

	resolved := *config

	if resolved.ConfigFile != "" {
		path, err := w.resolve(resolved.ConfigFile, rc.SourceDir)
		if err != nil {
			return nil, err
		}

		resolved.ConfigFile = string(path)
	}

	jar, err := w.styleJar(rc)
	if err != nil {
		return nil, err
	}

	return w.Check(ctx, StyleArgs{
		Config:   &resolved,
		Jar:      jar,
		Root:     rc.SubmissionDir,
		Parallel: rc.StyleParallel,
	})
}

// styleJar uses an absolute jar path as is and looks anything else up
// under the source directory.
func (w *workflow) styleJar(rc m.RunContext) (m.Path, error) {
	jar := rc.CheckstyleJar
	if !filepath.IsAbs(jar) {
		return w.resolve(jar, rc.SourceDir)
	}

	if _, err := w.FileInfo(m.Path(jar)); err != nil {
		return "", wrapConfigError(err, "Could not find the Checkstyle jar %q", jar)
	}

	return m.Path(jar), nil
}

func (w *workflow) resolve(name string, root m.Path) (m.Path, error) {
	path, err := w.FindUnique(name, root)
	if err == nil {
		return path, nil
	}

	var resolveErr *adapter.ResolveError

	switch {
	case errors.Is(err, adapter.ErrPathAmbiguous) && errors.As(err, &resolveErr):
		return "", configErrorf(`Tried finding only one instance of the required file "%s" in "%s" but found %d.`, name, root, resolveErr.Matches)
	case errors.Is(err, adapter.ErrPathNotFound):
		return "", configErrorf(`Tried finding the required file "%s" in "%s" but it was not there.`, name, root)
	default:
		return "", wrapConfigError(err, "Could not search %q for %q", root, name)
	}
}

func compileFailure(what string, err error) error {
	var compileErr *adapter.CompileError

	switch {
	case errors.Is(err, adapter.ErrToolNotFound):
		return configErrorf(javacNotFoundMessage)
	case errors.As(err, &compileErr):
		return configErrorf("Compilation of the %s failed:\n%s", what, compileErr.Diagnostics)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return wrapConfigError(err, "Could not compile the %s", what)
	}
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Path)
	if err != nil {
		slog.Error("Failed to load report", "path", args.Path, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Init(ctx context.Context, args InitArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := w.CopyFS(args.Template, args.Destination); err != nil {
		slog.Error("Failed to scaffold autograder", "destination", args.Destination, "error", err)
		return wrapConfigError(err, "Could not initialize the autograder in %q", args.Destination)
	}

	w.DisplayMessage(ctx, fmt.Sprintf("Initialized autograder in %q.", args.Destination))

	return nil
}

func (w *workflow) Zip(ctx context.Context, args ZipArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := w.FileInfo(args.Source)
	if err != nil || !info.IsDir() {
		return configErrorf("Could not find source directory %q when zipping the autograder. You must be outside of the autograder directory to zip it properly.", args.Source)
	}

	if err := w.ZipDir(args.Source, args.Output, ArchiveSkipDirs); err != nil {
		slog.Error("Failed to zip autograder", "source", args.Source, "error", err)
		return fmt.Errorf("zip autograder: %w", err)
	}

	w.DisplayMessage(ctx, fmt.Sprintf("Zipped autograder in %q.", args.Output))

	return nil
}
