package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatkit/floatnav/internal/logging/events"
	"github.com/floatkit/floatnav/internal/menu"
	"github.com/floatkit/floatnav/internal/source"
)

func waitForSourceEvent(w *source.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return sourceDoneMsg{}
		}
		return sourceEventMsg{event: evt}
	}
}

type sourceEventMsg struct {
	event source.Event
}

type sourceDoneMsg struct{}

func (m *Model) handleSourceEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(sourceEventMsg)
	if !ok {
		return nil
	}
	m.applySourceEvent(eventMsg.event)
	if m.source != nil {
		return waitForSourceEvent(m.source)
	}
	return nil
}

func (m *Model) handleSourceDoneMsg(tea.Msg) tea.Cmd {
	m.source = nil
	return nil
}

// applySourceEvent folds a state snapshot into the menu context and refreshes
// any open popup whose items derive from it.
func (m *Model) applySourceEvent(evt source.Event) {
	if evt.Err != nil {
		m.sourceState[evt.Kind] = evt.Err
		m.errMsg = fmt.Sprintf("state: %v", evt.Err)
		return
	}
	delete(m.sourceState, evt.Kind)
	switch evt.Kind {
	case source.KindFiles:
		entries, ok := evt.Data.([]menu.FileEntry)
		if !ok {
			return
		}
		m.menuCtx.RecentFiles = entries
		m.refreshLevels("open")
	case source.KindBookmarks:
		entries, ok := evt.Data.([]menu.BookmarkEntry)
		if !ok {
			return
		}
		m.menuCtx.Bookmarks = entries
		m.refreshLevels("bookmark")
	case source.KindWorkspaces:
		snapshot, ok := evt.Data.(source.WorkspaceSnapshot)
		if !ok {
			return
		}
		m.menuCtx.WorkspaceName = snapshot.Current
		m.menuCtx.Workspaces = snapshot.Names
		m.refreshLevels("workspace")
	}
}

// refreshLevels reloads every open level rooted at the given menu ID and
// tells its engine the contents changed under it.
func (m *Model) refreshLevels(rootID string) {
	for _, pl := range m.stack {
		id := pl.level.ID
		if id != rootID && !strings.HasPrefix(id, rootID+":") {
			continue
		}
		if pl.node == nil || pl.node.Loader == nil {
			continue
		}
		items, err := pl.node.Loader(m.menuCtx)
		if err != nil {
			m.errMsg = err.Error()
			continue
		}
		pl.level.UpdateItems(items)
		pl.engine.ListChanged(pl.level)
		events.Popup.ItemsChanged(id, len(items))
	}
}
