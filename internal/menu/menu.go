package menu

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a selectable menu entry.
type Item struct {
	ID       string
	Label    string
	Detail   string
	Disabled bool
}

// Level describes a breadcrumb component for display purposes.
type Level struct {
	ID    string
	Title string
	Items []Item
}

// Context carries runtime data needed by loader functions.
type Context struct {
	WorkspaceName string
	Workspaces    []string
	RecentFiles   []FileEntry
	Bookmarks     []BookmarkEntry
	ActiveTheme   string
}

// FileEntry represents a recently opened file reference for menu loaders.
type FileEntry struct {
	Path     string
	Label    string
	Missing  bool
	Modified bool
}

// BookmarkEntry represents a saved location reference for menu loaders.
type BookmarkEntry struct {
	ID    string
	Label string
	Path  string
}

// Loader populates submenu entries on demand.
type Loader func(Context) ([]Item, error)

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
}

// RootItems returns the top-level menu entries.
func RootItems() []Item {
	return []Item{
		{ID: "open", Label: "open"},
		{ID: "bookmark", Label: "bookmark"},
		{ID: "view", Label: "view"},
		{ID: "palette", Label: "palette"},
		{ID: "workspace", Label: "workspace"},
	}
}

// CategoryLoaders lists submenu loaders keyed by root item ID.
func CategoryLoaders() map[string]Loader {
	return map[string]Loader{
		"open":      loadOpenMenu,
		"bookmark":  loadBookmarkMenu,
		"view":      loadViewMenu,
		"palette":   loadPaletteMenu,
		"workspace": loadWorkspaceMenu,
	}
}

// ActionHandlers maps submenu identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		"open":             OpenFileAction,
		"bookmark:go":      BookmarkGoAction,
		"bookmark:add":     BookmarkAddAction,
		"bookmark:remove":  BookmarkRemoveAction,
		"view:split":       ViewSplitAction,
		"view:zoom":        ViewZoomAction,
		"view:arrange":     ViewArrangeAction,
		"palette":          PaletteAction,
		"workspace:switch": WorkspaceSwitchAction,
		"workspace:rename": WorkspaceRenameAction,
		"workspace:close":  WorkspaceCloseAction,
	}
}

// ActionLoaders enumerates loaders for nested submenu actions.
func ActionLoaders() map[string]Loader {
	return map[string]Loader{
		"bookmark:go":      loadBookmarkGoMenu,
		"bookmark:remove":  loadBookmarkRemoveMenu,
		"view:split":       loadViewSplitMenu,
		"view:arrange":     loadViewArrangeMenu,
		"workspace:switch": loadWorkspaceSwitchMenu,
	}
}

// GridCols maps node IDs to their grid column counts. Nodes not listed
// render as plain vertical lists.
func GridCols() map[string]int {
	return map[string]int{
		"palette":      paletteCols,
		"view:arrange": 2,
	}
}

func menuItemsFromIDs(ids []string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: id, Label: prettyLabel(id)})
	}
	return items
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
