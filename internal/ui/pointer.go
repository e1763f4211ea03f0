package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatkit/floatnav/internal/logging/events"
	"github.com/floatkit/floatnav/internal/nav"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	switch ev.Action {
	case tea.MouseActionMotion:
		m.handlePointerMove(current, ev)
		return nil
	case tea.MouseActionPress:
		if ev.Button == tea.MouseButtonLeft {
			return m.handlePointerClick(current, ev)
		}
	}
	return nil
}

func (m *Model) handlePointerMove(current *popupLevel, ev tea.MouseMsg) {
	index, overItem := m.hitTest(current, ev.X, ev.Y)
	if overItem {
		if m.hoverLevel == current.level.ID && m.hoverIndex == index {
			return
		}
		m.hoverLevel = current.level.ID
		m.hoverIndex = index
		events.Pointer.Hover(current.level.ID, index)
		current.engine.Item(index).PointerMove()
		return
	}
	// The pointer is over the container, not an item. Container motion
	// clears the key-set suppression so a genuine leave can fire.
	current.engine.Floating().PointerMove()
	if m.hoverLevel == current.level.ID && m.hoverIndex >= 0 {
		prev := m.hoverIndex
		m.hoverIndex = -1
		m.hoverLevel = ""
		events.Pointer.Leave(current.level.ID)
		current.engine.Item(prev).PointerLeave()
	}
}

func (m *Model) handlePointerClick(current *popupLevel, ev tea.MouseMsg) tea.Cmd {
	index, overItem := m.hitTest(current, ev.X, ev.Y)
	if !overItem {
		return nil
	}
	current.engine.Item(index).Click()
	return m.activateItem(nav.KeyEnter)
}

// hitTest maps terminal coordinates onto the current level's items using the
// layout recorded by the last render.
func (m *Model) hitTest(current *popupLevel, x, y int) (int, bool) {
	lay := m.layout
	if lay.rowsShown <= 0 {
		return -1, false
	}
	row := y - lay.itemsTop
	if row < 0 || row >= lay.rowsShown {
		return -1, false
	}
	rowIdx := row + lay.offset
	cols := current.level.Cols()
	if cols <= 1 {
		if rowIdx >= current.level.Len() {
			return -1, false
		}
		return rowIdx, true
	}
	col := -1
	edge := 0
	for c, w := range lay.colWidths {
		if x >= edge && x < edge+w {
			col = c
			break
		}
		edge += w + gridCellGap
	}
	if col < 0 {
		return -1, false
	}
	index := rowIdx*cols + col
	if index >= current.level.Len() {
		return -1, false
	}
	return index, true
}
