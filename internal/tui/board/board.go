package board

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"noteboard/internal/notes"
	"noteboard/internal/tui/messages"
	"noteboard/internal/tui/shared"
	"noteboard/internal/tui/theme"
)

const (
	inputHeight  = 3
	previewWidth = 72
	linesPerNote = 2
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Model is the note board view: input, info panel and note list
type Model struct {
	// Data
	board              *notes.Board
	showClassification bool
	now                func() time.Time

	// Sub-components
	input             textarea.Model
	searchInput       textinput.Model
	confirmationModal *shared.ConfirmationModal

	// State
	focus        focusArea
	cursor       int
	scrollOffset int
	feedback     *notes.Message

	// Inline search
	searchActive bool
	searchQuery  string

	// Dimensions
	width  int
	height int
}

// New creates the board view for an existing board
func New(board *notes.Board, showClassification bool) Model {
	ta := textarea.New()
	ta.Placeholder = "Write a note..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(inputHeight)
	ta.Focus()

	si := textinput.New()
	si.Placeholder = "search notes"
	si.Prompt = "/ "
	si.CharLimit = 128

	return Model{
		board:              board,
		showClassification: showClassification,
		now:                time.Now,
		input:              ta,
		searchInput:        si,
		focus:              focusInput,
	}
}

// Init starts the cursor blink of the note input
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// SetSize updates the dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	// Account for border (2) and padding (2)
	m.input.SetWidth(max(10, width-4))
	m.searchInput.Width = max(10, width-4)
}

// SetClock replaces the time source used for new notes
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// Board returns the underlying board
func (m Model) Board() *notes.Board {
	return m.board
}

// CapturingKeys reports whether plain letter keys belong to this view
// (typing a note, searching, or answering a confirmation).
func (m Model) CapturingKeys() bool {
	return m.focus == focusInput || m.searchActive || m.confirmationModal != nil
}

// Selected returns the note under the cursor in the list
func (m Model) Selected() (notes.Note, bool) {
	visible := m.visibleNotes()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return notes.Note{}, false
	}
	return visible[m.cursor], true
}

// visibleNotes returns the notes in display order: newest first, narrowed
// by the search query when one is set.
func (m Model) visibleNotes() []notes.Note {
	return notes.Filter(m.board.NewestFirst(), m.searchQuery)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shared.ConfirmationResultMsg:
		m.confirmationModal = nil
		if !msg.Confirmed {
			return m, nil
		}
		removed := m.board.Len()
		m.board.ClearAll()
		m.cursor = 0
		m.scrollOffset = 0
		m.setFeedback("All notes cleared.", notes.SeverityOK)
		return m, messages.Emit(messages.BoardClearedMsg{Removed: removed})

	case tea.KeyMsg:
		if m.confirmationModal != nil {
			return m, m.confirmationModal.Update(msg)
		}
		if m.searchActive {
			return m.updateSearch(msg)
		}

		switch msg.String() {
		case "ctrl+s", "alt+enter":
			return m.addNote()
		case "tab":
			return m.toggleFocus()
		}

		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m.toggleFocus()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Editing the input dismisses the last action's feedback
	if m.input.Value() != before {
		m.feedback = nil
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	visible := m.visibleNotes()

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(0, len(visible)-1)
	case "d", "x", "delete":
		return m.deleteSelected()
	case "C":
		return m.requestClear()
	case "/":
		m.searchActive = true
		m.searchInput.SetValue(m.searchQuery)
		return m, m.searchInput.Focus()
	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.cursor = 0
		}
	case "i", "a", "n":
		return m.toggleFocus()
	}
	m.syncScroll()
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchActive = false
		m.searchQuery = ""
		m.searchInput.Reset()
		m.searchInput.Blur()
		m.cursor = 0
		return m, nil
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchQuery = strings.TrimSpace(m.searchInput.Value())
	m.clampCursor()
	m.syncScroll()
	return m, cmd
}

func (m Model) toggleFocus() (Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		return m, nil
	}
	m.focus = focusInput
	return m, m.input.Focus()
}

func (m Model) addNote() (Model, tea.Cmd) {
	note, err := m.board.AddNote(m.input.Value(), m.now())
	if err != nil {
		m.feedback = feedbackFor(err, m.board.MaxUnique())
		return m, messages.Emit(messages.NoteRejectedMsg{Err: err})
	}

	m.input.Reset()
	m.searchQuery = ""
	m.cursor = 0
	m.scrollOffset = 0
	m.setFeedback("Note added.", notes.SeverityOK)
	return m, messages.Emit(messages.NoteAddedMsg{Note: note})
}

func (m Model) deleteSelected() (Model, tea.Cmd) {
	note, ok := m.Selected()
	if !ok {
		return m, nil
	}

	if err := m.board.RemoveNote(note.ID); err != nil {
		m.feedback = feedbackFor(err, m.board.MaxUnique())
		return m, messages.Emit(messages.NoteRejectedMsg{Err: err})
	}

	if m.board.MaxUnique() > 0 {
		m.setFeedback("Note deleted. You can add another unique note.", notes.SeverityOK)
	} else {
		m.setFeedback("Note deleted.", notes.SeverityOK)
	}
	m.clampCursor()
	m.syncScroll()
	return m, messages.Emit(messages.NoteRemovedMsg{ID: note.ID})
}

func (m Model) requestClear() (Model, tea.Cmd) {
	if !m.board.CanClear() {
		m.setFeedback("There are no notes to clear.", notes.SeverityCaution)
		return m, nil
	}

	details := fmt.Sprintf("%d note(s) will be removed.", m.board.Len())
	m.confirmationModal = shared.NewConfirmationModal("Delete all notes?", details, min(50, max(30, m.width/2)))
	return m, nil
}

func (m *Model) setFeedback(text string, severity notes.Severity) {
	m.feedback = &notes.Message{Text: text, Severity: severity}
}

func (m *Model) clampCursor() {
	if n := len(m.visibleNotes()); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

// feedbackFor maps a board error to the message shown after a failed action
func feedbackFor(err error, maxUnique int) *notes.Message {
	switch {
	case errors.Is(err, notes.ErrEmptyText):
		return &notes.Message{Text: "Write something before adding a note.", Severity: notes.SeverityCaution}
	case errors.Is(err, notes.ErrDuplicateText):
		return &notes.Message{Text: "Error: You already posted the same note. Please enter a new note.", Severity: notes.SeverityWarning}
	case errors.Is(err, notes.ErrCapacityExceeded):
		return &notes.Message{
			Text:     fmt.Sprintf("Board full: max %d unique notes. Delete one to add another.", maxUnique),
			Severity: notes.SeverityWarning,
		}
	case errors.Is(err, notes.ErrNotFound):
		return &notes.Message{Text: "That note no longer exists.", Severity: notes.SeverityCaution}
	}
	return &notes.Message{Text: err.Error(), Severity: notes.SeverityWarning}
}

func (m Model) View() string {
	if m.confirmationModal != nil {
		return shared.Overlay(m.confirmationModal.View(), m.width, m.height)
	}

	header := m.renderHeader()
	return header + "\n" + m.renderList(m.listRows(header)*linesPerNote)
}

// renderHeader draws everything above the note list
func (m Model) renderHeader() string {
	var sections []string

	sections = append(sections, theme.Title.Render("Noteboard"))

	inputStyle := theme.InputBox
	if m.focus == focusInput {
		inputStyle = theme.InputBoxFocused
	}
	sections = append(sections, inputStyle.Render(m.input.View()))

	hints := []string{
		hint("ctrl+s", "add note", m.board.CanAdd(m.input.Value())),
		hint("C", "clear all", m.board.CanClear()),
		hint("tab", "switch focus", true),
	}
	sections = append(sections, strings.Join(hints, "  "))

	sections = append(sections, "", renderInfoPanel(m.board, m.showClassification, m.feedback), "")

	if m.searchActive {
		sections = append(sections, m.searchInput.View())
	} else if m.searchQuery != "" {
		sections = append(sections, searchStyle.Render("filter: "+m.searchQuery)+theme.Muted.Render("  (esc to clear)"))
	}

	return strings.Join(sections, "\n")
}

// listRows returns how many notes fit below header
func (m Model) listRows(header string) int {
	return max(1, (m.height-lipgloss.Height(header))/linesPerNote)
}

// syncScroll keeps the cursor inside the drawn window
func (m *Model) syncScroll() {
	start, _ := shared.ScrollWindow(m.cursor, m.scrollOffset, len(m.visibleNotes()), m.listRows(m.renderHeader()))
	m.scrollOffset = start
}

func (m Model) renderList(height int) string {
	visible := m.visibleNotes()
	if len(visible) == 0 {
		empty := "No notes yet."
		if m.searchQuery != "" {
			empty = "No notes match the filter."
		}
		return shared.CenterContent(theme.Muted.Render(empty), height)
	}

	start, end := shared.ScrollWindow(m.cursor, m.scrollOffset, len(visible), height/linesPerNote)

	var rows []string
	for i := start; i < end; i++ {
		note := visible[i]
		selected := m.focus == focusList && i == m.cursor

		marker := "  "
		textStyle := noteTextStyle
		if selected {
			marker = cursorStyle.Render("> ")
			textStyle = selectedStyle
		}

		width := previewWidth
		if m.width > 0 {
			width = min(previewWidth, m.width-4)
		}
		rows = append(rows,
			marker+textStyle.Render(notes.Preview(note.Text, width)),
			"  "+noteMetaStyle.Render("Added: "+note.CreatedAt.Local().Format(timeLayout)),
		)
	}
	return strings.Join(rows, "\n")
}
