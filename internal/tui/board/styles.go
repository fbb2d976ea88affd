package board

import (
	"github.com/charmbracelet/lipgloss"
	"noteboard/internal/notes"
	"noteboard/internal/tui/theme"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	scoreStyle    = theme.Bold
	countStyle    = theme.Subtitle
	noteTextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	noteMetaStyle = theme.Muted
	cursorStyle   = theme.Cursor
	selectedStyle = theme.Selected
	searchStyle   = lipgloss.NewStyle().Foreground(theme.Secondary)
)

// badgeStyle colours the learner classification: red, amber, green
func badgeStyle(c notes.Classification) lipgloss.Style {
	switch c {
	case notes.ActiveLearner:
		return theme.Badge.Background(theme.Success)
	case notes.PassiveLearner:
		return theme.Badge.Background(theme.Warning)
	default:
		return theme.Badge.Background(theme.Danger)
	}
}

func severityStyle(s notes.Severity) lipgloss.Style {
	switch s {
	case notes.SeverityWarning:
		return theme.Error
	case notes.SeverityCaution:
		return theme.Warn
	default:
		return theme.Ok
	}
}

// hint renders a key hint, dimmed when the action is unavailable
func hint(key, desc string, enabled bool) string {
	if !enabled {
		return theme.Muted.Render("[" + key + "] " + desc)
	}
	return theme.KeyHint.Render("["+key+"]") + " " + desc
}
