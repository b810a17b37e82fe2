// Package ui renders the status tags and error lines printed by the CLI.
// Output is plain text unless stdout is a terminal and colour is enabled.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// Styled reports whether tags are rendered with colour. It starts out true
// only when stdout is an interactive terminal.
var Styled = term.IsTerminal(os.Stdout.Fd())

var (
	Green = lipgloss.Color("#58D68D")
	Amber = lipgloss.Color("#E59866")
	Pink  = lipgloss.Color("#FF6B9D")
	Gray  = lipgloss.Color("#AAB7B8")
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	skipStyle = lipgloss.NewStyle().Foreground(Gray)
	failStyle = lipgloss.NewStyle().Foreground(Pink).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(Amber)
)

const (
	tagOK   = "[ OK ]"
	tagSkip = "[SKIP]"
	tagFail = "[FAIL]"
)

func render(s lipgloss.Style, text string) string {
	if !Styled {
		return text
	}
	return s.Render(text)
}

// OK is the tag for a path that was created.
func OK() string { return render(okStyle, tagOK) }

// Skip is the tag for a path that already existed.
func Skip() string { return render(skipStyle, tagSkip) }

// Fail is the tag for a path that could not be created.
func Fail() string { return render(failStyle, tagFail) }

// Error formats an error line for stderr.
func Error(msg string) string { return render(failStyle, "Error: "+msg) }

// Warning formats a warning line for stderr.
func Warning(msg string) string { return render(warnStyle, "Warning: "+msg) }
