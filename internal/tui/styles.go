package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mpl/internal/ui"
)

// Style variables for the expression REPL, rebuilt from the current ui
// theme at package init and again each time Run starts.
var (
	panelStyle      lipgloss.Style
	headerStyle     lipgloss.Style
	promptStyle     lipgloss.Style
	inputStyle      lipgloss.Style
	resultOpStyle   lipgloss.Style
	resultValStyle  lipgloss.Style
	errorStyle      lipgloss.Style
	metricLabelStyle lipgloss.Style
	metricValueStyle lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inputStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	resultOpStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	resultValStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	metricLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	metricValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
