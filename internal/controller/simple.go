package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

var (
	passedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunInfo shows what is about to be graded.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	style := "no style check"
	if info.Style {
		style = "style check enabled"
	}

	s.printf("Grading %d test(s) from %s (%s)\n", info.Tests, info.Suite, style)
	s.printf("%s\n", faintStyle.Render("run "+info.RunID))
}

// DisplayTestResult prints one line per finished test.
func (s *SimpleUI) DisplayTestResult(ctx context.Context, index int, result m.TestResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[%d] %s -> %s (%s/%s)\n", index, displayName(result.Name), formatStatus(result.Status),
		formatScore(result.Score), formatScore(result.MaxScore))
}

// DisplayReport prints the summary table of a report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderReportTable(report))

	return nil
}

// DisplayMessage prints a single line.
func (s *SimpleUI) DisplayMessage(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", message)
}

func renderReportTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Test", "Visibility", "Status", "Score"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
	})

	for i, test := range report.Tests {
		table.Append([]string{
			strconv.Itoa(i),
			displayName(test.Name),
			string(test.Visibility),
			formatStatus(test.Status),
			formatScore(test.Score) + " / " + formatScore(test.MaxScore),
		})
	}

	score, maxScore := report.Totals()

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Total %d", len(report.Tests)),
		fmt.Sprintf("%.2fs", report.ExecutionTime),
		"",
		formatScore(score) + " / " + formatScore(maxScore),
	})

	table.Render()

	return tableBuffer.String()
}

func formatStatus(status m.Status) string {
	switch status {
	case m.StatusPassed:
		return passedStyle.Render(string(status))
	case m.StatusFailed:
		return failedStyle.Render(string(status))
	case m.StatusError:
		return errorStyle.Render(string(status))
	default:
		return unknownStatusLabel
	}
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func displayName(name string) string {
	if name == "" {
		return unnamedLabel
	}

	return name
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

const (
	unknownStatusLabel = "unknown"
	unnamedLabel       = "(unnamed)"
)
