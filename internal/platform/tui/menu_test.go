package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/lemon-snake/internal/games/snake"
)

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)

	ids := make(map[string]bool)
	for _, item := range m.items {
		ids[item.GameID] = true
		if item.Best != -1 {
			t.Errorf("%s: best = %d without a store, expected -1", item.GameID, item.Best)
		}
	}
	for _, id := range []string{"classic", "pausable", "growth"} {
		if !ids[id] {
			t.Errorf("menu missing variant %q", id)
		}
	}

	view := m.View()
	if !strings.Contains(view, "S N A K E") || !strings.Contains(view, "Snake (Growth)") {
		t.Error("menu view missing title or variants")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}

	sel := next.(MenuModel).Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.GameID != m.items[1].GameID {
		t.Errorf("selected %q, expected %q", sel.GameID, m.items[1].GameID)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if next.(MenuModel).cursor != 0 {
		t.Error("cursor should not move above the first item")
	}

	for range len(m.items) + 2 {
		next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := next.(MenuModel).cursor; got != len(m.items)-1 {
		t.Errorf("cursor = %d, expected last item %d", got, len(m.items)-1)
	}
}

func TestMenuScoreboard(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should request the scoreboard")
	}
}
