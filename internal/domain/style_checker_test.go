package domain_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jgrade.dev/pkg/jgrade/internal/adapter"
	adaptermocks "jgrade.dev/pkg/jgrade/internal/adapter/mocks"
	"jgrade.dev/pkg/jgrade/internal/domain"
	m "jgrade.dev/pkg/jgrade/internal/model"
)

const (
	styleJar  = m.Path("/autograder/source/checkstyle.jar")
	styleRoot = m.Path("/autograder/submission")
)

func lintOutput(violations string) adapter.LintOutput {
	out := adapter.LintOutput{Stdout: "Starting audit...\nAudit done.\n"}
	if violations != "" {
		out.Stdout += "Checkstyle ends with " + violations + " errors.\n"
	}

	return out
}

func TestStyleChecker_Disabled(t *testing.T) {
	checker := domain.NewStyleChecker(adaptermocks.NewMockSourceFSAdapter(t), adaptermocks.NewMockLinterAdapter(t))

	result, err := checker.Check(context.Background(), domain.StyleArgs{Jar: styleJar, Root: styleRoot})

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestStyleChecker_Scoring(t *testing.T) {
	tests := []struct {
		name       string
		outputs    []adapter.LintOutput
		wantScore  float64
		wantStatus m.Status
		wantOutput string
	}{
		{
			name:       "no violations",
			outputs:    []adapter.LintOutput{lintOutput(""), lintOutput("")},
			wantScore:  5,
			wantStatus: m.StatusPassed,
			wantOutput: "Style violations found: 0.",
		},
		{
			name:       "three violations across two files",
			outputs:    []adapter.LintOutput{lintOutput("1"), lintOutput("2")},
			wantScore:  3.5,
			wantStatus: m.StatusFailed,
			wantOutput: "Style violations found: 3.",
		},
		{
			name:       "ten or more violations",
			outputs:    []adapter.LintOutput{lintOutput("7"), lintOutput("6")},
			wantScore:  0,
			wantStatus: m.StatusFailed,
			wantOutput: "Style violations found: 13.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctx := context.Background()
			files := []m.Path{styleRoot + "/Main.java", styleRoot + "/Helper.java"}

			fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
			fsAdapter.EXPECT().ListFiles(styleRoot, mock.AnythingOfType("*regexp.Regexp")).Return(files, nil).Once()

			linter := adaptermocks.NewMockLinterAdapter(t)
			for i, file := range files {
				linter.EXPECT().Lint(mock.Anything, styleJar, m.Path("checks.xml"), file).Return(tt.outputs[i], nil).Once()
			}

			checker := domain.NewStyleChecker(fsAdapter, linter)

			// Act
			result, err := checker.Check(ctx, domain.StyleArgs{
				Config:   &m.StyleCheckConfig{ConfigFile: "checks.xml", MaxScore: 5},
				Jar:      styleJar,
				Root:     styleRoot,
				Parallel: 2,
			})

			// Assert
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, domain.StyleTestName, result.Name)
			assert.InDelta(t, tt.wantScore, result.Score, 1e-9)
			assert.Equal(t, 5.0, result.MaxScore)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantOutput, result.Output)
			assert.Equal(t, m.VisibilityVisible, result.Visibility)
		})
	}
}

func TestStyleChecker_DefaultFileRegex(t *testing.T) {
	ctx := context.Background()

	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().
		ListFiles(styleRoot, mock.MatchedBy(func(pattern *regexp.Regexp) bool {
			return pattern.String() == m.DefaultStyleFileRegex
		})).
		Return(nil, nil).
		Once()

	checker := domain.NewStyleChecker(fsAdapter, adaptermocks.NewMockLinterAdapter(t))

	result, err := checker.Check(ctx, domain.StyleArgs{
		Config: &m.StyleCheckConfig{MaxScore: 2},
		Jar:    styleJar,
		Root:   styleRoot,
	})

	require.NoError(t, err)
	assert.Equal(t, 2.0, result.Score)
	assert.Equal(t, m.StatusPassed, result.Status)
}

func TestStyleChecker_MissingAuditMarker(t *testing.T) {
	// Arrange
	ctx := context.Background()
	file := styleRoot + "/Main.java"

	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().ListFiles(styleRoot, mock.Anything).Return([]m.Path{file}, nil).Once()

	linter := adaptermocks.NewMockLinterAdapter(t)
	linter.EXPECT().Lint(mock.Anything, styleJar, m.Path(""), file).Return(adapter.LintOutput{
		Command:  []string{"java", "-jar", string(styleJar)},
		Stderr:   "Error: Unable to access jarfile",
		ExitCode: 1,
	}, nil).Once()

	checker := domain.NewStyleChecker(fsAdapter, linter)

	// Act
	result, err := checker.Check(ctx, domain.StyleArgs{
		Config: &m.StyleCheckConfig{MaxScore: 1},
		Jar:    styleJar,
		Root:   styleRoot,
	})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "Checkstyle failed (1):\njava -jar /autograder/source/checkstyle.jar")
	assert.Contains(t, err.Error(), "Unable to access jarfile")
}

func TestStyleChecker_LinterCannotStart(t *testing.T) {
	ctx := context.Background()
	file := styleRoot + "/Main.java"

	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().ListFiles(styleRoot, mock.Anything).Return([]m.Path{file}, nil).Once()

	linter := adaptermocks.NewMockLinterAdapter(t)
	linter.EXPECT().Lint(mock.Anything, styleJar, m.Path(""), file).Return(adapter.LintOutput{}, adapter.ErrToolNotFound).Once()

	_, err := domain.NewStyleChecker(fsAdapter, linter).Check(ctx, domain.StyleArgs{
		Config: &m.StyleCheckConfig{MaxScore: 1},
		Jar:    styleJar,
		Root:   styleRoot,
	})

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
	assert.True(t, errors.Is(err, adapter.ErrToolNotFound))
}

func TestStyleChecker_InvalidRegex(t *testing.T) {
	checker := domain.NewStyleChecker(adaptermocks.NewMockSourceFSAdapter(t), adaptermocks.NewMockLinterAdapter(t))

	_, err := checker.Check(context.Background(), domain.StyleArgs{
		Config: &m.StyleCheckConfig{FileRegex: "(", MaxScore: 1},
		Root:   styleRoot,
	})

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestStylePercentage(t *testing.T) {
	assert.Equal(t, 1.0, domain.StylePercentage(0))
	assert.InDelta(t, 0.9, domain.StylePercentage(1), 1e-9)
	assert.InDelta(t, 0.1, domain.StylePercentage(9), 1e-9)
	assert.Equal(t, 0.0, domain.StylePercentage(10))
	assert.Equal(t, 0.0, domain.StylePercentage(42))
}
