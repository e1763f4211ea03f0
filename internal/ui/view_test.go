package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatkit/floatnav/internal/nav"
)

func TestViewListsRootItems(t *testing.T) {
	m := newTestModel(40, 20)
	view := m.View()
	for _, label := range []string{"open", "bookmark", "view", "palette", "workspace"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected %q in view:\n%s", label, view)
		}
	}
	if !strings.Contains(view, defaultRootTitle) {
		t.Fatalf("expected breadcrumb header in view:\n%s", view)
	}
}

func TestViewShowsLoadingState(t *testing.T) {
	m := newTestModel(40, 20)
	m.loading = true
	m.pendingLabel = "palette"
	view := m.View()
	if !strings.Contains(view, "Loading palette") {
		t.Fatalf("expected loading line, got:\n%s", view)
	}
	if m.layout.rowsShown != 0 {
		t.Fatalf("expected no hit-testable rows while loading, got %d", m.layout.rowsShown)
	}
}

func TestViewShowsErrorMessage(t *testing.T) {
	m := newTestModel(40, 20)
	m.errMsg = "state file unreadable"
	view := m.View()
	if !strings.Contains(view, "Error: state file unreadable") {
		t.Fatalf("expected error line, got:\n%s", view)
	}
}

func TestViewGridPlacesItemsInColumns(t *testing.T) {
	h := NewHarness(newTestModel(60, 20))
	for i := 0; i < 3; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter}) // view submenu
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyDown}) // arrange
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	m := h.Model()
	top := m.currentLevel()
	if top.level.ID != "view:arrange" {
		t.Fatalf("expected arrange level, got %s", top.level.ID)
	}
	if top.level.Cols() != 2 {
		t.Fatalf("expected two columns, got %d", top.level.Cols())
	}

	view := h.View()
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "tile") {
			if !strings.Contains(line, "stack") {
				t.Fatalf("expected tile and stack on one grid row, got %q", line)
			}
			return
		}
	}
	t.Fatalf("expected grid row with tile, got:\n%s", view)
}

func TestViewFooterShowsNavigationProps(t *testing.T) {
	opts := nav.DefaultOptions()
	opts.Virtual = true
	m := NewModel(120, 20, true, false, opts, nil)
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Flush()

	view := h.View()
	if !strings.Contains(view, "orientation: vertical") {
		t.Fatalf("expected orientation in footer, got:\n%s", view)
	}
	if !strings.Contains(view, "active: open") {
		t.Fatalf("expected active descendant in footer, got:\n%s", view)
	}
}

func TestViewportFollowsActiveRow(t *testing.T) {
	m := newTestModel(40, 8)
	m.pushLevel("view", "view", menuItemsForTest(
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j",
	), nav.KeyNone)
	h := NewHarness(m)

	view := h.View()
	if strings.Contains(view, "▌ j") {
		t.Fatalf("expected last item outside the initial viewport:\n%s", view)
	}
	for i := 0; i < 10; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	view = h.View()
	if !strings.Contains(view, "▌ j") {
		t.Fatalf("expected last item visible after scrolling:\n%s", view)
	}
}
