package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func loadViewMenu(Context) ([]Item, error) {
	return []Item{
		{ID: "view:split", Label: "split"},
		{ID: "view:zoom", Label: "zoom"},
		{ID: "view:arrange", Label: "arrange"},
	}, nil
}

func loadViewSplitMenu(Context) ([]Item, error) {
	return menuItemsFromIDs([]string{"horizontal", "vertical"}), nil
}

// loadViewArrangeMenu backs a two-column grid node.
func loadViewArrangeMenu(Context) ([]Item, error) {
	return menuItemsFromIDs([]string{
		"tile",
		"stack",
		"columns",
		"rows",
		"main-left",
		"main-top",
	}), nil
}

func ViewSplitAction(_ Context, item Item) tea.Cmd {
	direction := item.ID
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("split %s", direction)}
	}
}

func ViewZoomAction(Context, Item) tea.Cmd {
	return func() tea.Msg {
		return ActionResult{Info: "zoom toggled"}
	}
}

func ViewArrangeAction(_ Context, item Item) tea.Cmd {
	layout := item.ID
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("arranged as %s", layout)}
	}
}
