package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// reportChromeLines is the number of lines the header and footer take.
const reportChromeLines = 4

// NewUI returns the interactive UI when output is a terminal and the plain
// line-based UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(f.Fd())
}

// TUI prints progress like SimpleUI and shows reports that do not fit on
// screen in a scrollable Bubble Tea viewer.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayReport shows the summary table, paging it when it is taller than
// the terminal.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := t.cmd.OutOrStdout()
	content := renderReportDetails(report)

	width, height, ok := terminalSize(out)
	if !ok || lineCount(content)+reportChromeLines <= height {
		t.printf("\n%s", content)
		return nil
	}

	model := newReportViewModel(content, width, height)

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to display report: %w", err)
	}

	return nil
}

// renderReportDetails is the summary table followed by the output of every
// test that has one.
func renderReportDetails(report m.Report) string {
	var b strings.Builder

	b.WriteString(renderReportTable(report))

	for i, test := range report.Tests {
		if test.Output == "" {
			continue
		}

		fmt.Fprintf(&b, "\n[%d] %s (%s)\n", i, displayName(test.Name), formatStatus(test.Status))

		for _, line := range strings.Split(strings.TrimRight(test.Output, "\n"), "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}

	return b.String()
}

func terminalSize(out io.Writer) (int, int, bool) {
	f, ok := out.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(f.Fd())
	if err != nil || height == 0 {
		return 0, 0, false
	}

	return width, height, true
}

func lineCount(s string) int {
	return strings.Count(strings.TrimRight(s, "\n"), "\n") + 1
}

// reportViewModel is the Bubble Tea model paging a rendered report.
type reportViewModel struct {
	viewport viewport.Model
	quitting bool
}

func newReportViewModel(content string, width, height int) reportViewModel {
	vp := viewport.New(width, max(height-reportChromeLines, 1))
	vp.SetContent(content)

	return reportViewModel{viewport: vp}
}

func (rvm reportViewModel) Init() tea.Cmd {
	return nil
}

func (rvm reportViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rvm.viewport.Width = msg.Width
		rvm.viewport.Height = max(msg.Height-reportChromeLines, 1)

		return rvm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			rvm.quitting = true
			return rvm, tea.Quit
		case "g", "home":
			rvm.viewport.GotoTop()
			return rvm, nil
		case "G", "end":
			rvm.viewport.GotoBottom()
			return rvm, nil
		}
	}

	var cmd tea.Cmd
	rvm.viewport, cmd = rvm.viewport.Update(msg)

	return rvm, cmd
}

func (rvm reportViewModel) View() string {
	if rvm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("jgrade results"))
	b.WriteString("\n\n")
	b.WriteString(rvm.viewport.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", footerStyle.Render(fmt.Sprintf("%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		rvm.viewport.ScrollPercent()*100)))

	return b.String()
}
