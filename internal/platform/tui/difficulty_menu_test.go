package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chase/internal/config"
)

func menuUpdate(m DifficultyModel, msg tea.Msg) (DifficultyModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(DifficultyModel), cmd
}

func TestDifficultyMenuSelect(t *testing.T) {
	m := NewDifficultyModel(80, 24, 5)

	if _, ok := m.Selected(); ok {
		t.Fatal("Selected() before choosing should be false")
	}

	// Cursor starts on fixed; move up to hard
	m, _ = menuUpdate(m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := menuUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("select should quit the menu program")
	}

	preset, ok := m.Selected()
	if !ok || preset != config.DifficultyHard {
		t.Errorf("Selected() = %q, %v; expected hard", preset, ok)
	}
}

func TestDifficultyMenuCursorBounds(t *testing.T) {
	m := NewDifficultyModel(80, 24, 5)
	for range 10 {
		m, _ = menuUpdate(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = menuUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if preset, _ := m.Selected(); preset != config.DifficultyFixed {
		t.Errorf("Selected() = %q, expected fixed", preset)
	}

	m = NewDifficultyModel(80, 24, 5)
	for range 10 {
		m, _ = menuUpdate(m, runeKey("k"))
	}
	m, _ = menuUpdate(m, runeKey(" "))
	if preset, _ := m.Selected(); preset != config.DifficultyEasy {
		t.Errorf("Selected() = %q, expected easy", preset)
	}
}

func TestDifficultyMenuQuit(t *testing.T) {
	m := NewDifficultyModel(80, 24, 5)
	m, _ = menuUpdate(m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.Selected(); ok {
		t.Error("Selected() after quit should be false")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestDifficultyMenuView(t *testing.T) {
	view := NewDifficultyModel(80, 24, 6).View()
	for _, want := range []string{"Easy", "chase speed 3", "Hard", "chase speed 8", "chase speed 6 (from config)"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
