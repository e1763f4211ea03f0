package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func loadWorkspaceMenu(ctx Context) ([]Item, error) {
	items := []Item{
		{ID: "workspace:switch", Label: "switch"},
		{ID: "workspace:rename", Label: "rename"},
		{ID: "workspace:close", Label: "close"},
	}
	if len(ctx.Workspaces) <= 1 {
		items[0].Disabled = true
	}
	return items, nil
}

func loadWorkspaceSwitchMenu(ctx Context) ([]Item, error) {
	items := make([]Item, 0, len(ctx.Workspaces))
	for _, name := range ctx.Workspaces {
		items = append(items, Item{
			ID:       "workspace:switch:" + name,
			Label:    name,
			Disabled: name == ctx.WorkspaceName,
		})
	}
	if len(items) == 0 {
		items = append(items, Item{ID: "workspace:switch:none", Label: "(no workspaces)", Disabled: true})
	}
	return items, nil
}

func WorkspaceSwitchAction(_ Context, item Item) tea.Cmd {
	name := itemSuffix(item.ID, "workspace:switch:")
	if name == "" {
		return func() tea.Msg { return ActionResult{Err: fmt.Errorf("invalid workspace selection")} }
	}
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("switched to %s", name)}
	}
}

func WorkspaceRenameAction(ctx Context, _ Item) tea.Cmd {
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("rename %s", ctx.WorkspaceName)}
	}
}

func WorkspaceCloseAction(ctx Context, _ Item) tea.Cmd {
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("closed %s", ctx.WorkspaceName)}
	}
}
