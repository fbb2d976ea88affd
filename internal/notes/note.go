package notes

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NoteID is a UUID-based identifier for a Note
type NoteID string

// NewNoteID generates a new UUID v4 NoteID
func NewNoteID() NoteID {
	return NoteID(uuid.New().String())
}

// Note is a single user-submitted text entry on a board
type Note struct {
	ID        NoteID
	Text      string // Trimmed, never empty
	CreatedAt time.Time
}

// normalize returns the form used for duplicate comparison.
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// SameText reports whether the note's text equals text once both are
// trimmed and lowercased.
func (n Note) SameText(text string) bool {
	return normalize(n.Text) == normalize(text)
}
