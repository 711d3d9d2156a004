package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

func sampleReport() m.Report {
	return m.Report{
		ExecutionTime: 1.25,
		Tests: []m.TestResult{
			{
				Score:      1,
				MaxScore:   1,
				Status:     m.StatusPassed,
				Name:       "Test 1",
				Output:     "Feedback:\n\nOutputs match exactly.",
				Visibility: m.VisibilityVisible,
			},
			{
				Score:      0,
				MaxScore:   2,
				Status:     m.StatusFailed,
				Name:       "Hidden",
				Output:     "",
				Visibility: m.VisibilityHidden,
				Number:     "1.2",
				Tags:       []string{"edge"},
				ExtraData: &m.ExtraData{
					ReferenceOutput: "4\n",
					StudentOutput:   "5\n",
				},
			},
		},
	}
}

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	dir := filepath.Join(t.TempDir(), "results")

	path, err := store.SaveReport(m.Path(dir), sampleReport())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ResultsFileName), string(path))

	loaded, err := store.LoadReport(path)
	require.NoError(t, err)
	assert.Equal(t, sampleReport(), loaded)
}

func TestLocalReportStore_SaveReportIsCanonical(t *testing.T) {
	store := NewReportStore()

	path, err := store.SaveReport(m.Path(t.TempDir()), sampleReport())
	require.NoError(t, err)

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, `{"execution_time":1.25,"tests":[{"max_score":1,"name":"Test 1"`), text)
	assert.NotContains(t, text, "\n  ")
}

func TestLocalReportStore_EmptyReport(t *testing.T) {
	store := NewReportStore()

	path, err := store.SaveReport(m.Path(t.TempDir()), m.Report{})
	require.NoError(t, err)

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, `{"execution_time":0,"tests":[]}`, string(data))
}

func TestLocalReportStore_RejectsInvalidReport(t *testing.T) {
	store := NewReportStore()

	report := sampleReport()
	report.Tests[0].Status = "skipped"

	dir := t.TempDir()
	_, err := store.SaveReport(m.Path(dir), report)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, ResultsFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalReportStore_Validate(t *testing.T) {
	store := NewReportStore()

	assert.NoError(t, store.Validate([]byte(`{"execution_time":0,"tests":[]}`)))
	assert.Error(t, store.Validate([]byte(`{"tests":[]}`)))
	assert.Error(t, store.Validate([]byte(`{"execution_time":0,"tests":[],"score":3}`)))
}

func TestLocalReportStore_LoadMissing(t *testing.T) {
	store := NewReportStore()

	_, err := store.LoadReport(m.Path(filepath.Join(t.TempDir(), ResultsFileName)))
	assert.Error(t, err)
}
