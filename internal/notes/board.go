package notes

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// PointsPerNote is the score contributed by each note on a board.
const PointsPerNote = 2

// Board owns an ordered collection of notes and the rules for admitting
// new ones. A Board is not safe for concurrent use; it belongs to a single
// caller.
type Board struct {
	notes           []Note
	maxUnique       int // 0 means unbounded
	checkDuplicates bool
	newID           func() NoteID
}

// Option configures a Board
type Option func(*Board)

// WithMaxUnique caps the number of notes the board accepts.
// Values below 1 leave the board unbounded.
func WithMaxUnique(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.maxUnique = n
		}
	}
}

// WithDuplicateCheck rejects notes whose trimmed, case-insensitive text
// matches an existing note.
func WithDuplicateCheck() Option {
	return func(b *Board) {
		b.checkDuplicates = true
	}
}

// WithIDGenerator replaces the UUID generator used for new notes.
func WithIDGenerator(fn func() NoteID) Option {
	return func(b *Board) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// NewBoard creates an empty board
func NewBoard(opts ...Option) *Board {
	b := &Board{newID: NewNoteID}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddNote validates rawText and appends it as a new note created at now.
// Checks run in order: empty text, duplicate text, capacity.
func (b *Board) AddNote(rawText string, now time.Time) (Note, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return Note{}, ErrEmptyText
	}

	if b.checkDuplicates {
		for _, n := range b.notes {
			if n.SameText(text) {
				return Note{}, goerr.Wrap(ErrDuplicateText, "cannot add note",
					goerr.V("text", text), goerr.V("existing_id", n.ID))
			}
		}
	}

	if b.Full() {
		return Note{}, goerr.Wrap(ErrCapacityExceeded, "cannot add note",
			goerr.V("max_unique", b.maxUnique))
	}

	note := Note{
		ID:        b.newID(),
		Text:      text,
		CreatedAt: now,
	}
	b.notes = append(b.notes, note)
	return note, nil
}

// RemoveNote deletes the note with the given id, keeping the order of the rest.
func (b *Board) RemoveNote(id NoteID) error {
	for i, n := range b.notes {
		if n.ID == id {
			b.notes = append(b.notes[:i:i], b.notes[i+1:]...)
			return nil
		}
	}
	return goerr.Wrap(ErrNotFound, "cannot remove note", goerr.V("id", id))
}

// ClearAll removes every note
func (b *Board) ClearAll() {
	b.notes = nil
}

// Len returns the number of notes on the board
func (b *Board) Len() int {
	return len(b.notes)
}

// Score returns PointsPerNote for every note. There is no cap.
func (b *Board) Score() int {
	return PointsPerNote * len(b.notes)
}

// Classification returns the learner class for the current note count
func (b *Board) Classification() Classification {
	return Classify(len(b.notes))
}

// StatusMessage returns the advisory message for the current state.
// A full board overrides the count-based message.
func (b *Board) StatusMessage() Message {
	if b.Full() {
		return Message{Text: FullMessage(b.maxUnique), Severity: SeverityWarning}
	}
	return StatusFor(len(b.notes))
}

// Notes returns a copy of the notes in insertion order
func (b *Board) Notes() []Note {
	out := make([]Note, len(b.notes))
	copy(out, b.notes)
	return out
}

// NewestFirst returns a copy of the notes, most recently added first
func (b *Board) NewestFirst() []Note {
	out := make([]Note, len(b.notes))
	for i, n := range b.notes {
		out[len(b.notes)-1-i] = n
	}
	return out
}

// Get returns the note with the given id
func (b *Board) Get(id NoteID) (Note, bool) {
	for _, n := range b.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Full reports whether a capacity is configured and reached
func (b *Board) Full() bool {
	return b.maxUnique > 0 && len(b.notes) >= b.maxUnique
}

// MaxUnique returns the configured capacity, or 0 when unbounded
func (b *Board) MaxUnique() int {
	return b.maxUnique
}

// ChecksDuplicates reports whether duplicate text is rejected
func (b *Board) ChecksDuplicates() bool {
	return b.checkDuplicates
}

// CanAdd reports whether the add action should be offered for rawText.
// It does not check duplicates; AddNote still enforces every rule.
func (b *Board) CanAdd(rawText string) bool {
	return strings.TrimSpace(rawText) != "" && !b.Full()
}

// CanClear reports whether there is anything to clear
func (b *Board) CanClear() bool {
	return len(b.notes) > 0
}
