package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"noteboard/internal/config"
	"noteboard/internal/logs"
	"noteboard/internal/notes"
	boardview "noteboard/internal/tui/board"
	"noteboard/internal/tui/messages"
	"noteboard/internal/tui/shared"
)

// AppModel is the root model: it owns global keys, the help overlay and the
// status bar, and dispatches everything else to the board view.
type AppModel struct {
	cfg       *config.Config
	boardView boardview.Model
	showHelp  bool
	width     int
	height    int
	ready     bool
}

// NewAppModel creates the root application model around a board
func NewAppModel(cfg *config.Config, board *notes.Board) AppModel {
	return AppModel{
		cfg:       cfg,
		boardView: boardview.New(board, cfg.ShowsClassification()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.boardView.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.boardView.SetSize(msg.Width, msg.Height-3) // Reserve space for status bar
		return m, nil

	case messages.NoteAddedMsg:
		logs.Logger.Printf("Note added: %s (%d chars)", msg.Note.ID, len(msg.Note.Text))
		return m, nil

	case messages.NoteRemovedMsg:
		logs.Logger.Printf("Note removed: %s", msg.ID)
		return m, nil

	case messages.BoardClearedMsg:
		logs.Logger.Printf("Board cleared: %d note(s) removed", msg.Removed)
		return m, nil

	case messages.NoteRejectedMsg:
		logs.Logger.Printf("Board refused change: %v", msg.Err)
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.boardView.CapturingKeys() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.boardView, cmd = m.boardView.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections(), m.width, m.height)
	}

	statusText := fmt.Sprintf("mode: %s | tab: focus | ?: help | q: quit", m.cfg.Mode)
	if m.boardView.CapturingKeys() {
		statusText = fmt.Sprintf("mode: %s | ctrl+s: add | tab/esc: list | ctrl+c: quit", m.cfg.Mode)
	}

	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(statusText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, m.boardView.View(), statusBar)
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Note Input",
			Binds: []shared.HelpBind{
				{Key: "ctrl+s", Desc: "Add note"},
				{Key: "alt+enter", Desc: "Add note"},
				{Key: "tab / esc", Desc: "Focus note list"},
			},
		},
		{
			Title: "Note List",
			Binds: []shared.HelpBind{
				{Key: "j / k", Desc: "Navigate notes"},
				{Key: "g / G", Desc: "First / last note"},
				{Key: "d / x", Desc: "Delete selected note"},
				{Key: "C", Desc: "Clear all notes"},
				{Key: "/", Desc: "Search notes"},
				{Key: "i / tab", Desc: "Focus note input"},
			},
		},
		{
			Title: "Global",
			Binds: []shared.HelpBind{
				{Key: "?", Desc: "Show this help"},
				{Key: "q", Desc: "Quit"},
				{Key: "ctrl+c", Desc: "Force quit"},
			},
		},
	}
}
