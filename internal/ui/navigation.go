package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatkit/floatnav/internal/logging/events"
	"github.com/floatkit/floatnav/internal/menu"
	"github.com/floatkit/floatnav/internal/nav"
	"github.com/floatkit/floatnav/internal/ui/command"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	if !m.closeTopLevel() {
		return tea.Quit
	}
	return nil
}

// handleEnterKey activates the current item: descend into a submenu or run
// the item's action.
func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	return m.activateItem(nav.KeyEnter)
}

func (m *Model) activateItem(key nav.Key) tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	index, ok := current.engine.ActiveIndex()
	if !ok {
		return nil
	}
	item, ok := current.level.Item(index)
	if !ok || item.Disabled {
		return nil
	}
	events.UI.MenuEnter(current.level.ID, item.ID, item.Label, current.level.Filter)
	if current.level.Filter != "" {
		before := current.level.FilterCursorPos()
		current.level.SetFilter("", 0)
		m.noteFilterCursorChange(current.level, before)
		current.engine.ListChanged(current.level)
	}

	node := m.nodeForItem(current, item)
	if node != nil && node.Loader != nil {
		return m.openSubmenu(node, item, key)
	}
	if node != nil && node.Action != nil {
		return m.runAction(node, item)
	}
	if current.node != nil && current.node.Action != nil {
		return m.runAction(current.node, item)
	}
	m.setInfo(fmt.Sprintf("Selected %s (no action defined yet)", item.Label))
	return nil
}

// nodeForItem resolves the registry node an item points at, if any.
func (m *Model) nodeForItem(current *popupLevel, item menu.Item) *menu.Node {
	if node, ok := m.registry.Find(item.ID); ok {
		return node
	}
	if current.node != nil {
		if child, ok := current.node.Children[item.ID]; ok {
			return child
		}
	}
	return nil
}

func (m *Model) openSubmenu(node *menu.Node, item menu.Item, key nav.Key) tea.Cmd {
	m.loading = true
	m.pendingID = node.ID
	m.pendingLabel = item.Label
	m.pendingKey = key
	m.errMsg = ""
	m.forceClearInfo()
	return m.loadMenuCmd(node.ID, item.Label, node.Loader)
}

func (m *Model) runAction(node *menu.Node, item menu.Item) tea.Cmd {
	m.loading = true
	m.pendingID = node.ID
	m.pendingLabel = item.Label
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(m.menuCtx, command.Request{ID: node.ID, Label: item.Label, Run: node.Action, Item: item})
}

func (m *Model) handleCategoryLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(categoryLoadedMsg)
	if !ok {
		return nil
	}
	if update.id != m.pendingID {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	openKey := m.pendingKey
	m.pendingKey = nav.KeyNone
	if update.err != nil {
		m.errMsg = update.err.Error()
		return nil
	}
	m.errMsg = ""
	m.pushLevel(update.id, update.title, update.items, openKey)
	if len(update.items) == 0 {
		m.setInfo("No entries found.")
	}
	return nil
}

// pushLevel opens a submenu popup on top of the stack. The opening key is
// replayed through the new engine's reference bindings so the initial focus
// rule sees how the popup was opened.
func (m *Model) pushLevel(id, title string, items []menu.Item, openKey nav.Key) *popupLevel {
	parentID := ""
	if parent := m.currentLevel(); parent != nil {
		parentID = parent.level.ID
	}
	node, _ := m.registry.Find(id)
	pl := m.newPopupLevel(id, title, items, node, parentID)
	m.stack = append(m.stack, pl)
	pl.engine.SetPageSize(m.maxVisibleItems())
	if openKey != nav.KeyNone {
		pl.engine.Reference().KeyDown(openKey)
	}
	if !pl.engine.IsOpen() {
		pl.engine.SetOpen(true)
	}
	events.UI.MenuPush(id, parentID)
	return pl
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return tea.Quit
}
