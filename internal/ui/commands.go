package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatkit/floatnav/internal/logging"
	"github.com/floatkit/floatnav/internal/menu"
	"github.com/floatkit/floatnav/internal/nav"
)

// frameMsg drains the deferred focus schedulers, standing in for the next
// rendering frame.
type frameMsg struct{}

func frameTick() tea.Cmd {
	return tea.Tick(nav.DefaultFrameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *Model) loadMenuCmd(id, title string, loader menu.Loader) tea.Cmd {
	ctx := m.menuCtx
	return func() tea.Msg {
		items, err := loader(ctx)
		if err != nil {
			logging.Error(err)
		}
		return categoryLoadedMsg{id: id, title: title, items: items, err: err}
	}
}

// categoryLoadedMsg mirrors the async loader response.
type categoryLoadedMsg struct {
	id    string
	title string
	items []menu.Item
	err   error
}
