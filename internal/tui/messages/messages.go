package messages

import (
	tea "github.com/charmbracelet/bubbletea"
	"noteboard/internal/notes"
)

// NoteAddedMsg reports a note accepted by the board
type NoteAddedMsg struct {
	Note notes.Note
}

// NoteRemovedMsg reports a note deleted from the board
type NoteRemovedMsg struct {
	ID notes.NoteID
}

// BoardClearedMsg reports that every note was removed
type BoardClearedMsg struct {
	Removed int
}

// NoteRejectedMsg reports an add or remove the board refused
type NoteRejectedMsg struct {
	Err error
}

// Emit wraps a message in a command
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
