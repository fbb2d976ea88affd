package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"noteboard/internal/config"
	"noteboard/internal/notes"
)

func newTestApp(mode config.Mode) AppModel {
	cfg := config.Defaults(mode)
	m := NewAppModel(cfg, cfg.NewBoard())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

func press(m AppModel, msg tea.KeyMsg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func TestView_Loading(t *testing.T) {
	cfg := config.Defaults(config.ModeThread)
	m := NewAppModel(cfg, cfg.NewBoard())
	if m.View() != "Loading..." {
		t.Errorf("expected loading view before first resize")
	}
}

func TestQuitKeyOnlyOutsideInput(t *testing.T) {
	m := newTestApp(config.ModeThread)

	// the note input has focus, so global letter keys are typed instead
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if m.showHelp {
		t.Fatal("? must not open help while typing")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m := newTestApp(config.ModeScore)
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestApp(config.ModeThread)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})

	if !m.showHelp || !strings.Contains(m.View(), "Clear all notes") {
		t.Fatal("expected help overlay")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.showHelp {
		t.Error("expected any key to dismiss help")
	}
}

func TestAddFlowsThroughToBoard(t *testing.T) {
	m := newTestApp(config.ModeThread)
	for _, r := range "hello" {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if cmd == nil {
		t.Fatal("expected a command from add")
	}
	// feed the emitted message back, as the runtime would
	updated, _ := m.Update(cmd())
	m = updated.(AppModel)

	view := m.View()
	if !strings.Contains(view, "Your current score is 2") {
		t.Errorf("expected score 2 in view")
	}
	if !strings.Contains(view, "mode: thread") {
		t.Errorf("expected mode in status bar")
	}
	if !strings.Contains(view, notes.PassiveLearner.String()) {
		t.Errorf("expected classification badge")
	}
}
