package domain_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jgrade.dev/pkg/jgrade/internal/adapter"
	adaptermocks "jgrade.dev/pkg/jgrade/internal/adapter/mocks"
	"jgrade.dev/pkg/jgrade/internal/controller"
	controllermocks "jgrade.dev/pkg/jgrade/internal/controller/mocks"
	"jgrade.dev/pkg/jgrade/internal/domain"
	domainmocks "jgrade.dev/pkg/jgrade/internal/domain/mocks"
	m "jgrade.dev/pkg/jgrade/internal/model"
)

const (
	sourceDir     = m.Path("/autograder/source")
	submissionDir = m.Path("/autograder/submission")
	resultsDir    = m.Path("/autograder/results")
	suitePath     = m.Path("/autograder/source/tests.yaml")
)

type workflowMocks struct {
	fs         *adaptermocks.MockSourceFSAdapter
	compiler   *adaptermocks.MockCompilerAdapter
	store      *adaptermocks.MockReportStore
	archiver   *adaptermocks.MockArchiveAdapter
	ui         *controllermocks.MockUI
	loader     *domainmocks.MockSuiteLoader
	aggregator *domainmocks.MockAggregator
	style      *domainmocks.MockStyleChecker
}

func newWorkflowMocks(t *testing.T) (*workflowMocks, domain.Workflow) {
	t.Helper()

	mocks := &workflowMocks{
		fs:         adaptermocks.NewMockSourceFSAdapter(t),
		compiler:   adaptermocks.NewMockCompilerAdapter(t),
		store:      adaptermocks.NewMockReportStore(t),
		archiver:   adaptermocks.NewMockArchiveAdapter(t),
		ui:         controllermocks.NewMockUI(t),
		loader:     domainmocks.NewMockSuiteLoader(t),
		aggregator: domainmocks.NewMockAggregator(t),
		style:      domainmocks.NewMockStyleChecker(t),
	}

	wf := domain.NewWorkflow(mocks.fs, mocks.compiler, mocks.store, mocks.archiver, mocks.ui, mocks.loader, mocks.aggregator, mocks.style)

	return mocks, wf
}

func testRunContext() m.RunContext {
	return m.RunContext{
		SourceDir:      sourceDir,
		SubmissionDir:  submissionDir,
		ResultsDir:     resultsDir,
		SuiteName:      domain.DefaultSuiteFile,
		CheckstyleJar:  "checkstyle.jar",
		DefaultTimeout: time.Second,
		CompileFailure: m.CompileFailureFatal,
		StyleParallel:  2,
		ExtraData:      true,
	}
}

func testSuite(style *m.StyleCheckConfig) m.Suite {
	opts := m.DefaultTestOptions()
	opts.Name = "Add"
	opts.MaxScore = 10

	return m.Suite{
		EntryPoint: "Main.java",
		Tests:      []m.TestCase{m.SimpleCase{Arguments: "1 2", Opts: opts}},
		Style:      style,
	}
}

// expectSetup covers the steps every run takes before compiling.
func (w *workflowMocks) expectSetup(ctx context.Context, suite m.Suite) {
	w.fs.EXPECT().FindUnique(domain.DefaultSuiteFile, sourceDir).Return(suitePath, nil).Once()
	w.loader.EXPECT().Load(suitePath).Return(suite, nil).Once()
	w.fs.EXPECT().FindUnique("Main.java", sourceDir).Return(sourceDir+"/Main.java", nil).Once()
	w.fs.EXPECT().FindUnique("Main.java", submissionDir).Return(submissionDir+"/Main.java", nil).Once()
	w.ui.EXPECT().DisplayRunInfo(ctx, mock.MatchedBy(func(info controller.RunInfo) bool {
		return info.RunID != "" && info.Suite == suitePath && info.Tests == len(suite.Tests) && info.Style == (suite.Style != nil)
	})).Return().Once()
}

func TestWorkflow_Run_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	w, wf := newWorkflowMocks(t)
	suite := testSuite(&m.StyleCheckConfig{ConfigFile: "checks.xml", FileRegex: m.DefaultStyleFileRegex, MaxScore: 5})

	w.expectSetup(ctx, suite)
	w.compiler.EXPECT().Compile(ctx, sourceDir+"/Main.java", "").Return(nil).Once()
	w.compiler.EXPECT().Compile(ctx, submissionDir+"/Main.java", "").Return(nil).Once()

	testResult := m.TestResult{Score: 10, MaxScore: 10, Status: m.StatusPassed, Name: "Add", Visibility: m.VisibilityVisible}
	w.aggregator.EXPECT().Run(ctx, mock.MatchedBy(func(args domain.AggregateArgs) bool {
		return args.Reference == sourceDir+"/Main.java" &&
			args.Submission == submissionDir+"/Main.java" &&
			args.DefaultTimeout == time.Second &&
			args.ExtraData &&
			args.OnResult != nil &&
			len(args.Tests) == 1
	})).Return(1500*time.Millisecond, []m.TestResult{testResult}, nil).Once()

	w.fs.EXPECT().FindUnique("checks.xml", sourceDir).Return(sourceDir+"/checks.xml", nil).Once()
	w.fs.EXPECT().FindUnique("checkstyle.jar", sourceDir).Return(sourceDir+"/checkstyle.jar", nil).Once()

	styleResult := &m.TestResult{Score: 5, MaxScore: 5, Status: m.StatusPassed, Name: domain.StyleTestName, Output: "Style violations found: 0.", Visibility: m.VisibilityVisible}
	w.style.EXPECT().Check(ctx, domain.StyleArgs{
		Config:   &m.StyleCheckConfig{ConfigFile: string(sourceDir + "/checks.xml"), FileRegex: m.DefaultStyleFileRegex, MaxScore: 5},
		Jar:      sourceDir + "/checkstyle.jar",
		Root:     submissionDir,
		Parallel: 2,
	}).Return(styleResult, nil).Once()
	w.ui.EXPECT().DisplayTestResult(ctx, 1, *styleResult).Return().Once()

	expected := m.Report{ExecutionTime: 1.5, Tests: []m.TestResult{testResult, *styleResult}}
	w.store.EXPECT().SaveReport(resultsDir, expected).Return(resultsDir+"/results.json", nil).Once()
	w.ui.EXPECT().DisplayReport(ctx, expected).Return(nil).Once()

	// Act
	err := wf.Run(ctx, testRunContext())

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_Run_ClasspathAndAbsoluteJar(t *testing.T) {
	// Arrange
	ctx := context.Background()
	w, wf := newWorkflowMocks(t)
	suite := testSuite(&m.StyleCheckConfig{MaxScore: 1})
	suite.Classpath = "lib"

	jarDir := t.TempDir()
	jar := jarDir + "/checkstyle.jar"
	require.NoError(t, os.WriteFile(jar, []byte("jar"), 0o600))
	info, err := os.Stat(jar)
	require.NoError(t, err)

	rc := testRunContext()
	rc.CheckstyleJar = jar

	w.expectSetup(ctx, suite)
	w.fs.EXPECT().FindUnique("lib", sourceDir).Return(sourceDir+"/lib", nil).Once()
	w.compiler.EXPECT().Compile(ctx, sourceDir+"/Main.java", string(sourceDir+"/lib")).Return(nil).Once()
	w.compiler.EXPECT().Compile(ctx, submissionDir+"/Main.java", string(sourceDir+"/lib")).Return(nil).Once()
	w.aggregator.EXPECT().Run(ctx, mock.Anything).Return(0, nil, nil).Once()
	w.fs.EXPECT().FileInfo(m.Path(jar)).Return(info, nil).Once()
	w.style.EXPECT().Check(ctx, mock.MatchedBy(func(args domain.StyleArgs) bool {
		return args.Jar == m.Path(jar) && args.Config.ConfigFile == ""
	})).Return(nil, nil).Once()
	w.store.EXPECT().SaveReport(resultsDir, m.Report{}).Return(resultsDir+"/results.json", nil).Once()
	w.ui.EXPECT().DisplayReport(ctx, m.Report{}).Return(nil).Once()

	// Act
	err = wf.Run(ctx, rc)

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_Run_SubmissionCompileFailure(t *testing.T) {
	t.Run("fatal policy aborts", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		w, wf := newWorkflowMocks(t)
		suite := testSuite(nil)

		w.expectSetup(ctx, suite)
		w.compiler.EXPECT().Compile(ctx, sourceDir+"/Main.java", "").Return(nil).Once()
		w.compiler.EXPECT().Compile(ctx, submissionDir+"/Main.java", "").
			Return(&adapter.CompileError{ExitCode: 1, Diagnostics: "Main.java:3: error: ';' expected"}).Once()

		// Act
		err := wf.Run(ctx, testRunContext())

		// Assert
		require.Error(t, err)
		assert.True(t, domain.IsConfigurationError(err))
		assert.Equal(t, "Compilation of the submission failed:\nMain.java:3: error: ';' expected", err.Error())
	})

	t.Run("report policy scores every test as an error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		w, wf := newWorkflowMocks(t)
		suite := testSuite(nil)

		rc := testRunContext()
		rc.CompileFailure = m.CompileFailureReport

		w.expectSetup(ctx, suite)
		w.compiler.EXPECT().Compile(ctx, sourceDir+"/Main.java", "").Return(nil).Once()
		w.compiler.EXPECT().Compile(ctx, submissionDir+"/Main.java", "").
			Return(&adapter.CompileError{ExitCode: 1, Diagnostics: "Main.java:3: error: ';' expected\n1 error\n"}).Once()

		expected := domain.CompileFailureResults(suite.Tests, "Main.java:3: error: ';' expected\n1 error\n")
		w.ui.EXPECT().DisplayTestResult(ctx, 0, expected[0]).Return().Once()

		report := m.Report{Tests: expected}
		w.store.EXPECT().SaveReport(resultsDir, report).Return(resultsDir+"/results.json", nil).Once()
		w.ui.EXPECT().DisplayReport(ctx, report).Return(nil).Once()

		// Act
		err := wf.Run(ctx, rc)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, m.StatusError, expected[0].Status)
	})
}

func TestWorkflow_Run_ReferenceCompileFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{
			name:    "javac missing",
			err:     adapter.ErrToolNotFound,
			wantErr: "Java compiler (javac) not found. Please ensure you selected in Gradescope a base image variant with Java installed.",
		},
		{
			name:    "reference does not compile",
			err:     &adapter.CompileError{ExitCode: 2, Diagnostics: "boom"},
			wantErr: "Compilation of the reference solution failed:\nboom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			w, wf := newWorkflowMocks(t)
			suite := testSuite(nil)

			rc := testRunContext()
			rc.CompileFailure = m.CompileFailureReport

			w.expectSetup(ctx, suite)
			w.compiler.EXPECT().Compile(ctx, sourceDir+"/Main.java", "").Return(tt.err).Once()

			err := wf.Run(ctx, rc)

			require.Error(t, err)
			assert.True(t, domain.IsConfigurationError(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestWorkflow_Run_ResolveErrors(t *testing.T) {
	t.Run("ambiguous entry point", func(t *testing.T) {
		w, wf := newWorkflowMocks(t)

		w.fs.EXPECT().FindUnique(domain.DefaultSuiteFile, sourceDir).Return(suitePath, nil).Once()
		w.loader.EXPECT().Load(suitePath).Return(testSuite(nil), nil).Once()
		w.fs.EXPECT().FindUnique("Main.java", sourceDir).
			Return("", &adapter.ResolveError{Name: "Main.java", Root: sourceDir, Matches: 2, Err: adapter.ErrPathAmbiguous}).Once()

		err := wf.Run(context.Background(), testRunContext())

		require.Error(t, err)
		assert.True(t, domain.IsConfigurationError(err))
		assert.Equal(t, `Tried finding only one instance of the required file "Main.java" in "/autograder/source" but found 2.`, err.Error())
	})

	t.Run("missing suite file", func(t *testing.T) {
		w, wf := newWorkflowMocks(t)

		w.fs.EXPECT().FindUnique(domain.DefaultSuiteFile, sourceDir).
			Return("", &adapter.ResolveError{Name: domain.DefaultSuiteFile, Root: sourceDir, Err: adapter.ErrPathNotFound}).Once()

		err := wf.Run(context.Background(), testRunContext())

		require.Error(t, err)
		assert.Equal(t, `Tried finding the required file "tests.yaml" in "/autograder/source" but it was not there.`, err.Error())
	})

	t.Run("invalid suite", func(t *testing.T) {
		w, wf := newWorkflowMocks(t)
		loadErr := &domain.ConfigurationError{Message: "entry_point not found in the suite file."}

		w.fs.EXPECT().FindUnique(domain.DefaultSuiteFile, sourceDir).Return(suitePath, nil).Once()
		w.loader.EXPECT().Load(suitePath).Return(m.Suite{}, loadErr).Once()

		err := wf.Run(context.Background(), testRunContext())

		assert.Same(t, loadErr, err)
	})
}

func TestWorkflow_Run_ReferenceFailureWritesNoReport(t *testing.T) {
	// Arrange
	ctx := context.Background()
	w, wf := newWorkflowMocks(t)
	suite := testSuite(nil)
	runErr := &domain.ConfigurationError{Message: "The reference solution code failed to run on test (0) \"Add\" with error:\n\nboom"}

	w.expectSetup(ctx, suite)
	w.compiler.EXPECT().Compile(ctx, mock.Anything, "").Return(nil).Times(2)
	w.aggregator.EXPECT().Run(ctx, mock.Anything).Return(0, nil, runErr).Once()

	// Act
	err := wf.Run(ctx, testRunContext())

	// Assert
	assert.Same(t, runErr, err)
	w.store.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
}

func TestWorkflow_Run_SaveReportError(t *testing.T) {
	ctx := context.Background()
	w, wf := newWorkflowMocks(t)
	suite := testSuite(nil)
	saveErr := errors.New("disk full")

	w.expectSetup(ctx, suite)
	w.compiler.EXPECT().Compile(ctx, mock.Anything, "").Return(nil).Times(2)
	w.aggregator.EXPECT().Run(ctx, mock.Anything).Return(0, nil, nil).Once()
	w.store.EXPECT().SaveReport(resultsDir, mock.Anything).Return("", saveErr).Once()

	err := wf.Run(ctx, testRunContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, saveErr)
	assert.False(t, domain.IsConfigurationError(err))
}

func TestWorkflow_View(t *testing.T) {
	t.Run("displays the stored report", func(t *testing.T) {
		ctx := context.Background()
		w, wf := newWorkflowMocks(t)
		report := m.Report{ExecutionTime: 2, Tests: []m.TestResult{{Name: "Add", Score: 1, MaxScore: 1, Status: m.StatusPassed}}}

		w.store.EXPECT().LoadReport(resultsDir+"/results.json").Return(report, nil).Once()
		w.ui.EXPECT().DisplayReport(ctx, report).Return(nil).Once()

		err := wf.View(ctx, domain.ViewArgs{Path: resultsDir + "/results.json"})

		require.NoError(t, err)
	})

	t.Run("load error", func(t *testing.T) {
		w, wf := newWorkflowMocks(t)
		w.store.EXPECT().LoadReport(m.Path("missing.json")).Return(m.Report{}, os.ErrNotExist).Once()

		err := wf.View(context.Background(), domain.ViewArgs{Path: "missing.json"})

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestWorkflow_Init(t *testing.T) {
	ctx := context.Background()
	w, wf := newWorkflowMocks(t)
	template := fstest.MapFS{"source/tests.yaml": {Data: []byte("entry_point: Main.java\ntests: []\n")}}

	w.fs.EXPECT().CopyFS(template, m.Path("autograder")).Return(nil).Once()
	w.ui.EXPECT().DisplayMessage(ctx, `Initialized autograder in "autograder".`).Return().Once()

	err := wf.Init(ctx, domain.InitArgs{Template: template, Destination: "autograder"})

	require.NoError(t, err)
}

func TestWorkflow_Zip(t *testing.T) {
	t.Run("zips the directory", func(t *testing.T) {
		ctx := context.Background()
		w, wf := newWorkflowMocks(t)

		dir := t.TempDir()
		info, err := os.Stat(dir)
		require.NoError(t, err)

		w.fs.EXPECT().FileInfo(m.Path(dir)).Return(info, nil).Once()
		w.archiver.EXPECT().ZipDir(m.Path(dir), m.Path("autograder.zip"), domain.ArchiveSkipDirs).Return(nil).Once()
		w.ui.EXPECT().DisplayMessage(ctx, `Zipped autograder in "autograder.zip".`).Return().Once()

		err = wf.Zip(ctx, domain.ZipArgs{Source: m.Path(dir), Output: "autograder.zip"})

		require.NoError(t, err)
	})

	t.Run("missing source", func(t *testing.T) {
		w, wf := newWorkflowMocks(t)
		w.fs.EXPECT().FileInfo(m.Path("autograder")).Return(nil, os.ErrNotExist).Once()

		err := wf.Zip(context.Background(), domain.ZipArgs{Source: "autograder", Output: "autograder.zip"})

		require.Error(t, err)
		assert.True(t, domain.IsConfigurationError(err))
		assert.Contains(t, err.Error(), `Could not find source directory "autograder"`)
	})
}
