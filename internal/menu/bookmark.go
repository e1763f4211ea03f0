package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func loadBookmarkMenu(ctx Context) ([]Item, error) {
	items := []Item{
		{ID: "bookmark:go", Label: "go"},
		{ID: "bookmark:add", Label: "add"},
		{ID: "bookmark:remove", Label: "remove"},
	}
	if len(ctx.Bookmarks) == 0 {
		for i := range items {
			if items[i].ID != "bookmark:add" {
				items[i].Disabled = true
			}
		}
	}
	return items, nil
}

func loadBookmarkGoMenu(ctx Context) ([]Item, error) {
	return bookmarkEntriesToItems(ctx.Bookmarks, "bookmark:go:")
}

func loadBookmarkRemoveMenu(ctx Context) ([]Item, error) {
	return bookmarkEntriesToItems(ctx.Bookmarks, "bookmark:remove:")
}

func bookmarkEntriesToItems(entries []BookmarkEntry, prefix string) ([]Item, error) {
	if len(entries) == 0 {
		return []Item{{ID: prefix + "none", Label: "(no bookmarks)", Disabled: true}}, nil
	}
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, Item{ID: prefix + entry.ID, Label: entry.Label, Detail: entry.Path})
	}
	return items, nil
}

func BookmarkGoAction(ctx Context, item Item) tea.Cmd {
	id := itemSuffix(item.ID, "bookmark:go:")
	entry, ok := findBookmark(ctx.Bookmarks, id)
	if !ok {
		return func() tea.Msg { return ActionResult{Err: fmt.Errorf("unknown bookmark %q", id)} }
	}
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("jumped to %s", entry.Path)}
	}
}

func BookmarkAddAction(ctx Context, _ Item) tea.Cmd {
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("bookmarked %s", ctx.WorkspaceName)}
	}
}

func BookmarkRemoveAction(ctx Context, item Item) tea.Cmd {
	id := itemSuffix(item.ID, "bookmark:remove:")
	entry, ok := findBookmark(ctx.Bookmarks, id)
	if !ok {
		return func() tea.Msg { return ActionResult{Err: fmt.Errorf("unknown bookmark %q", id)} }
	}
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("removed bookmark %s", entry.Label)}
	}
}

func findBookmark(entries []BookmarkEntry, id string) (BookmarkEntry, bool) {
	for _, entry := range entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return BookmarkEntry{}, false
}
