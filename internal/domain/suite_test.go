package domain_test

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptermocks "jgrade.dev/pkg/jgrade/internal/adapter/mocks"
	"jgrade.dev/pkg/jgrade/internal/domain"
	m "jgrade.dev/pkg/jgrade/internal/model"
	"jgrade.dev/pkg/jgrade/internal/scaffold"
)

const suiteDir = m.Path("/autograder/source")

func newTestSuiteLoader(t *testing.T) domain.SuiteLoader {
	t.Helper()
	return domain.NewSuiteLoader(adaptermocks.NewMockSourceFSAdapter(t), adaptermocks.NewMockScorerRunnerAdapter(t))
}

func TestSuiteLoader_Parse(t *testing.T) {
	// Arrange
	loader := newTestSuiteLoader(t)
	data := []byte(`
entry_point: Main.java
classpath: lib
tests:
  - args: "1 2"
    name: Add
    max_score: 10
    timeout: 2
  - args: "secret"
    visibility: hidden
    number: "1.2"
    tags: [edge]
    scorer: normalized
  - ["3 4", {name: Tuple}]
  - ["5 6", {kind: contains, substring: Total, ignore_case: true, miss_score: 0.25, miss_feedback: nope}, {max_score: 4}]
  - args: ""
    timeout: 0.5
    scorer:
      kind: command
      command: python3 score.py --strict
      timeout: 3
check_style:
  config_file: checks.xml
  max_score: 5
`)

	// Act
	suite, err := loader.Parse(data, suiteDir)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Main.java", suite.EntryPoint)
	assert.Equal(t, "lib", suite.Classpath)
	require.Len(t, suite.Tests, 5)

	first, ok := suite.Tests[0].(m.SimpleCase)
	require.True(t, ok)
	assert.Equal(t, "1 2", first.Args())
	assert.Equal(t, "Add", first.Opts.Name)
	assert.Equal(t, 10.0, first.Opts.MaxScore)
	assert.Equal(t, 2*time.Second, first.Opts.Timeout)
	assert.Equal(t, m.VisibilityVisible, first.Opts.Visibility)

	second, ok := suite.Tests[1].(m.ScoredCase)
	require.True(t, ok)
	assert.Equal(t, domain.NormalizedScorer{}, second.Scorer)
	assert.Equal(t, m.VisibilityHidden, second.Opts.Visibility)
	assert.Equal(t, "1.2", second.Opts.Number)
	assert.Equal(t, []string{"edge"}, second.Opts.Tags)
	assert.Equal(t, 1.0, second.Opts.MaxScore)

	third, ok := suite.Tests[2].(m.SimpleCase)
	require.True(t, ok)
	assert.Equal(t, "3 4", third.Args())
	assert.Equal(t, "Tuple", third.Opts.Name)

	fourth, ok := suite.Tests[3].(m.ScoredCase)
	require.True(t, ok)
	contains, ok := fourth.Scorer.(*domain.ContainsScorer)
	require.True(t, ok)
	assert.Equal(t, "Total", contains.Substring)
	assert.True(t, contains.IgnoreCase)
	assert.Equal(t, m.ScoreResult{Percentage: 1}, contains.Hit)
	assert.Equal(t, m.ScoreResult{Percentage: 0.25, Feedback: "nope"}, contains.Miss)
	assert.Equal(t, 4.0, fourth.Opts.MaxScore)

	fifth, ok := suite.Tests[4].(m.ScoredCase)
	require.True(t, ok)
	command, ok := fifth.Scorer.(*domain.CommandScorer)
	require.True(t, ok)
	assert.Equal(t, []string{"python3", "score.py", "--strict"}, command.Command)
	assert.Equal(t, suiteDir, command.Dir)
	assert.Equal(t, 3*time.Second, command.Timeout)
	assert.Equal(t, 500*time.Millisecond, fifth.Opts.Timeout)

	require.NotNil(t, suite.Style)
	assert.Equal(t, "checks.xml", suite.Style.ConfigFile)
	assert.Equal(t, m.DefaultStyleFileRegex, suite.Style.FileRegex)
	assert.Equal(t, 5.0, suite.Style.MaxScore)
}

func TestSuiteLoader_ParseMinimal(t *testing.T) {
	suite, err := newTestSuiteLoader(t).Parse([]byte("entry_point: Main.java\ntests: []\n"), suiteDir)

	require.NoError(t, err)
	assert.Empty(t, suite.Tests)
	assert.Empty(t, suite.Classpath)
	assert.Nil(t, suite.Style)
}

func TestSuiteLoader_CommandAsList(t *testing.T) {
	data := []byte(`
entry_point: Main.java
tests:
  - args: x
    scorer: {kind: command, command: [./score, "a b"]}
`)

	suite, err := newTestSuiteLoader(t).Parse(data, suiteDir)

	require.NoError(t, err)
	scored := suite.Tests[0].(m.ScoredCase)
	command := scored.Scorer.(*domain.CommandScorer)
	assert.Equal(t, []string{"./score", "a b"}, command.Command)
	assert.Equal(t, domain.DefaultScorerTimeout, command.Timeout)
}

func TestSuiteLoader_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "empty file",
			data:    "",
			wantErr: "The suite file is empty.",
		},
		{
			name:    "missing entry point",
			data:    "tests: []\n",
			wantErr: "entry_point not found in the suite file.",
		},
		{
			name:    "entry point is not a string",
			data:    "entry_point: [Main.java]\ntests: []\n",
			wantErr: "entry_point must be a string.",
		},
		{
			name:    "entry point is a path",
			data:    "entry_point: src/Main.java\ntests: []\n",
			wantErr: "entry_point must be a file name, not a path.",
		},
		{
			name:    "unknown top level key",
			data:    "entry_point: Main.java\ntests: []\nextra: 1\n",
			wantErr: "The suite file is not valid",
		},
		{
			name:    "missing tests",
			data:    "entry_point: Main.java\n",
			wantErr: "tests not found in the suite file.",
		},
		{
			name:    "tests is not a list",
			data:    "entry_point: Main.java\ntests: {a: 1}\n",
			wantErr: "tests must be a list of test configurations.",
		},
		{
			name:    "tuple too long",
			data:    "entry_point: Main.java\ntests:\n  - [a, exact, {}, {}]\n",
			wantErr: "Invalid test configuration at tests[0]: must be (args, [optional scorer], options)",
		},
		{
			name:    "tuple without options mapping",
			data:    "entry_point: Main.java\ntests:\n  - [a, exact]\n",
			wantErr: "Invalid test configuration at tests[0]: must be (args, [optional scorer], options)",
		},
		{
			name:    "unknown test key",
			data:    "entry_point: Main.java\ntests:\n  - {args: a, weight: 2}\n",
			wantErr: `Invalid test configuration at tests[0]: unknown key "weight"`,
		},
		{
			name:    "negative max score",
			data:    "entry_point: Main.java\ntests:\n  - {args: a}\n  - {args: b, max_score: -1}\n",
			wantErr: "Invalid test configuration at tests[1]: max_score must be a non-negative number",
		},
		{
			name:    "bad visibility",
			data:    "entry_point: Main.java\ntests:\n  - {args: a, visibility: secret}\n",
			wantErr: `visibility must be one of visible, hidden, after_due_date or after_published, got "secret"`,
		},
		{
			name:    "zero timeout",
			data:    "entry_point: Main.java\ntests:\n  - {args: a, timeout: 0}\n",
			wantErr: "timeout must be a positive number of seconds",
		},
		{
			name:    "timeout beyond duration range",
			data:    "entry_point: Main.java\ntests:\n  - {args: a, timeout: 1e10}\n",
			wantErr: "timeout must be less than 9223372037 seconds",
		},
		{
			name:    "numeric args in tuple",
			data:    "entry_point: Main.java\ntests:\n  - [12, {name: a}]\n",
			wantErr: "args must be a string",
		},
		{
			name:    "boolean args",
			data:    "entry_point: Main.java\ntests:\n  - {args: true}\n",
			wantErr: "args must be a string",
		},
		{
			name:    "unknown scorer",
			data:    "entry_point: Main.java\ntests:\n  - {args: a, scorer: fuzzy}\n",
			wantErr: `unknown scorer kind "fuzzy"`,
		},
		{
			name:    "contains without substring",
			data:    "entry_point: Main.java\ntests:\n  - {args: a, scorer: {kind: contains}}\n",
			wantErr: "contains scorer needs a substring",
		},
		{
			name:    "contains score out of range",
			data:    "entry_point: Main.java\ntests:\n  - {args: a, scorer: {kind: contains, substring: x, hit_score: 1.5}}\n",
			wantErr: "must return a score percentage between 0 and 1 inclusive.",
		},
		{
			name:    "command without command",
			data:    "entry_point: Main.java\ntests:\n  - {args: a, scorer: {kind: command}}\n",
			wantErr: "command scorer needs a command",
		},
		{
			name:    "check style without max score",
			data:    "entry_point: Main.java\ntests: []\ncheck_style: {config_file: checks.xml}\n",
			wantErr: "check_style.max_score is required.",
		},
		{
			name:    "check style eval function",
			data:    "entry_point: Main.java\ntests: []\ncheck_style: {max_score: 1, eval_function: score}\n",
			wantErr: "check_style.eval_function is not supported.",
		},
		{
			name:    "check style bad regex",
			data:    "entry_point: Main.java\ntests: []\ncheck_style: {max_score: 1, file_regex: \"(\"}\n",
			wantErr: "is not a valid regular expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestSuiteLoader(t).Parse([]byte(tt.data), suiteDir)

			require.Error(t, err)
			assert.True(t, domain.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSuiteLoader_Load(t *testing.T) {
	t.Run("command scorer runs next to the suite file", func(t *testing.T) {
		// Arrange
		fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
		fsAdapter.EXPECT().ReadFile(m.Path("/autograder/source/config/tests.yaml")).Return([]byte(`
entry_point: Main.java
tests:
  - {args: a, scorer: {kind: command, command: ./score}}
`), nil).Once()

		loader := domain.NewSuiteLoader(fsAdapter, adaptermocks.NewMockScorerRunnerAdapter(t))

		// Act
		suite, err := loader.Load("/autograder/source/config/tests.yaml")

		// Assert
		require.NoError(t, err)
		command := suite.Tests[0].(m.ScoredCase).Scorer.(*domain.CommandScorer)
		assert.Equal(t, m.Path("/autograder/source/config"), command.Dir)
	})

	t.Run("unreadable file", func(t *testing.T) {
		fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
		fsAdapter.EXPECT().ReadFile(m.Path("/missing/tests.yaml")).Return(nil, os.ErrNotExist).Once()

		_, err := domain.NewSuiteLoader(fsAdapter, adaptermocks.NewMockScorerRunnerAdapter(t)).Load("/missing/tests.yaml")

		require.Error(t, err)
		assert.True(t, domain.IsConfigurationError(err))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestSuiteLoader_ParseScaffoldSuite(t *testing.T) {
	data, err := fs.ReadFile(scaffold.FS(), "source/tests.yaml")
	require.NoError(t, err)

	suite, err := newTestSuiteLoader(t).Parse(data, suiteDir)

	require.NoError(t, err)
	assert.Equal(t, "Main.java", suite.EntryPoint)
	assert.Len(t, suite.Tests, 4)
	require.NotNil(t, suite.Style)
	assert.Equal(t, `Main\.java`, suite.Style.FileRegex)
	assert.Equal(t, 10.0, suite.Style.MaxScore)

	secret, ok := suite.Tests[0].(m.ScoredCase)
	require.True(t, ok)
	assert.Equal(t, "Check Secret", secret.Opts.Name)
	assert.Equal(t, `contains("banana split")`, secret.Scorer.Name())
}
