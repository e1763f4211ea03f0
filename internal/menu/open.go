package menu

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

func loadOpenMenu(ctx Context) ([]Item, error) {
	if len(ctx.RecentFiles) == 0 {
		return []Item{{ID: "open:none", Label: "(no recent files)", Disabled: true}}, nil
	}
	items := make([]Item, 0, len(ctx.RecentFiles))
	for _, entry := range ctx.RecentFiles {
		label := entry.Label
		if label == "" {
			label = filepath.Base(entry.Path)
		}
		detail := entry.Path
		if entry.Modified {
			detail += " (modified)"
		}
		items = append(items, Item{
			ID:       "open:" + entry.Path,
			Label:    label,
			Detail:   detail,
			Disabled: entry.Missing,
		})
	}
	return items, nil
}

func OpenFileAction(ctx Context, item Item) tea.Cmd {
	path := itemSuffix(item.ID, "open:")
	if path == "" {
		return func() tea.Msg { return ActionResult{Err: fmt.Errorf("invalid file selection")} }
	}
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("opened %s", path)}
	}
}
