package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for user-facing output. lipgloss drops the colors when
// stdout is not a terminal.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3FB950"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// printSuccess prints "<label> <path>" with the label highlighted.
func printSuccess(w io.Writer, label, path string) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render(label), path)
}

func printFailure(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render(label), detail)
}

func printMuted(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}
