package shared

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		name                          string
		cursor, offset, total, visible int
		start, end                    int
	}{
		{"fits", 0, 0, 3, 5, 0, 3},
		{"cursor below window", 6, 0, 10, 4, 3, 7},
		{"cursor above window", 1, 5, 10, 4, 1, 5},
		{"offset past end", 9, 9, 10, 4, 6, 10},
		{"empty", 0, 0, 0, 4, 0, 0},
	}

	for _, tt := range tests {
		start, end := ScrollWindow(tt.cursor, tt.offset, tt.total, tt.visible)
		if start != tt.start || end != tt.end {
			t.Errorf("%s: expected [%d,%d), got [%d,%d)", tt.name, tt.start, tt.end, start, end)
		}
	}
}

func TestCenterContent(t *testing.T) {
	out := CenterContent("x", 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[2] != "x" {
		t.Errorf("expected content on middle line, got %q", lines)
	}
}

func TestConfirmationModal(t *testing.T) {
	m := NewConfirmationModal("Delete all notes?", "", 30)

	tests := []struct {
		key       tea.KeyMsg
		confirmed bool
		handled   bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, true, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false, true},
		{tea.KeyMsg{Type: tea.KeyEsc}, false, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, false, false},
	}

	for _, tt := range tests {
		cmd := m.Update(tt.key)
		if !tt.handled {
			if cmd != nil {
				t.Errorf("key %q: expected no command", tt.key.String())
			}
			continue
		}
		if cmd == nil {
			t.Fatalf("key %q: expected a command", tt.key.String())
		}
		result, ok := cmd().(ConfirmationResultMsg)
		if !ok {
			t.Fatalf("key %q: expected ConfirmationResultMsg", tt.key.String())
		}
		if result.Confirmed != tt.confirmed {
			t.Errorf("key %q: expected confirmed=%v", tt.key.String(), tt.confirmed)
		}
	}

	if !strings.Contains(m.View(), "Delete all notes?") {
		t.Error("expected message in view")
	}
}
