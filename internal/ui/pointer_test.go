package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func TestPointerMoveHighlightsHoveredItem(t *testing.T) {
	h := NewHarness(newTestModel(40, 20))
	h.View()

	// Row 0 is the breadcrumb header; "view" is the third item.
	h.Send(motion(2, 3))

	m := h.Model()
	root := m.stack[0]
	if m.hoverIndex != 2 || m.hoverLevel != "root" {
		t.Fatalf("expected hover on item 2, got level=%q index=%d", m.hoverLevel, m.hoverIndex)
	}
	if idx, ok := root.engine.ActiveIndex(); !ok || idx != 2 {
		t.Fatalf("expected hovered item active, got %d ok=%v", idx, ok)
	}
}

func TestPointerLeaveClearsHighlight(t *testing.T) {
	h := NewHarness(newTestModel(40, 20))
	h.View()
	h.Send(motion(2, 3))
	h.View()

	// Move below the item rows but still inside the popup.
	h.Send(motion(2, 15))

	m := h.Model()
	if m.hoverIndex != -1 {
		t.Fatalf("expected hover cleared, got %d", m.hoverIndex)
	}
	root := m.stack[0]
	if idx, ok := root.engine.ActiveIndex(); ok {
		t.Fatalf("expected no active item after leave, got %d", idx)
	}
}

func TestKeyboardSelectionSurvivesPointerLeave(t *testing.T) {
	h := NewHarness(newTestModel(40, 20))
	h.View()

	// Key navigation sets the suppress flag; the leave that follows without
	// an intervening container motion must not clear the selection.
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	root := h.Model().stack[0]
	root.engine.Item(0).PointerLeave()
	if idx, ok := root.engine.ActiveIndex(); !ok || idx != 0 {
		t.Fatalf("expected keyboard selection intact, got %d ok=%v", idx, ok)
	}
}

func TestPointerClickActivatesItem(t *testing.T) {
	h := NewHarness(newTestModel(40, 20))
	h.View()

	h.Send(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	m := h.Model()
	if len(m.stack) != 2 || m.stack[1].level.ID != "view" {
		t.Fatalf("expected click to open the view submenu, got %d levels", len(m.stack))
	}
}

func TestPointerIgnoresRowsOutsideList(t *testing.T) {
	h := NewHarness(newTestModel(40, 20))
	h.View()

	h.Send(motion(2, 0))
	m := h.Model()
	if m.hoverIndex != -1 {
		t.Fatalf("expected header row to miss, got hover %d", m.hoverIndex)
	}
}

func TestFilterTypingSuppressesPointerLeave(t *testing.T) {
	h := NewHarness(newTestModel(40, 20))
	h.View()

	// Typing focuses the best match and counts as keyboard use, so a leave
	// without intervening container motion keeps the selection.
	typeRunes(h, "boo")
	root := h.Model().stack[0]
	if idx, ok := root.engine.ActiveIndex(); !ok || idx != 0 {
		t.Fatalf("expected best match active after typing, got %d ok=%v", idx, ok)
	}
	root.engine.Item(0).PointerLeave()
	if idx, ok := root.engine.ActiveIndex(); !ok || idx != 0 {
		t.Fatalf("expected selection to survive leave after typing, got %d ok=%v", idx, ok)
	}
}
