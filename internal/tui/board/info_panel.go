package board

import (
	"fmt"
	"strings"

	"noteboard/internal/notes"
)

// renderInfoPanel draws score, count, classification and the status line.
// feedback, when set, replaces the board's advisory status message.
func renderInfoPanel(b *notes.Board, showClassification bool, feedback *notes.Message) string {
	var lines []string

	lines = append(lines, scoreStyle.Render(fmt.Sprintf("Your current score is %d", b.Score())))

	count := fmt.Sprintf("Notes: %d", b.Len())
	if b.MaxUnique() > 0 {
		count = fmt.Sprintf("Notes: %d/%d", b.Len(), b.MaxUnique())
	}
	row := countStyle.Render(count)
	if showClassification {
		c := b.Classification()
		row += "  " + badgeStyle(c).Render(c.String())
	}
	lines = append(lines, row)

	status := b.StatusMessage()
	if feedback != nil {
		status = *feedback
	}
	lines = append(lines, severityStyle(status.Severity).Render(status.Text))

	return strings.Join(lines, "\n")
}
