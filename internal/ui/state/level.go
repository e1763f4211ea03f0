package state

import (
	"strings"

	"github.com/floatkit/floatnav/internal/menu"
	"github.com/floatkit/floatnav/internal/nav"
)

// Level encapsulates one popup's item state: filtered items, filter input and
// viewport. The active index lives in the popup's nav.Engine, not here.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Node           *menu.Node
	ViewportOffset int
}

var _ nav.List = (*Level)(nil)

// NewLevel constructs a Level using the provided items and menu node.
func NewLevel(id, title string, items []menu.Item, node *menu.Node) *Level {
	l := &Level{
		ID:    id,
		Title: title,
		Node:  node,
	}
	l.UpdateItems(items)
	return l
}

// Len implements nav.List.
func (l *Level) Len() int { return len(l.Items) }

// Present implements nav.List. Filtered-out items are not in Items at all, so
// every slot that exists is present.
func (l *Level) Present(i int) bool { return i >= 0 && i < len(l.Items) }

// ItemDisabled implements nav.List.
func (l *Level) ItemDisabled(i int) bool {
	if i < 0 || i >= len(l.Items) {
		return true
	}
	return l.Items[i].Disabled
}

// ItemID implements nav.List.
func (l *Level) ItemID(i int) string {
	if i < 0 || i >= len(l.Items) {
		return ""
	}
	return l.Items[i].ID
}

// Cols returns the grid column count for this level, 1 for linear lists.
func (l *Level) Cols() int {
	if l.Node != nil && l.Node.Cols > 1 {
		return l.Node.Cols
	}
	return 1
}

// Item returns the item at index i.
func (l *Level) Item(i int) (menu.Item, bool) {
	if i < 0 || i >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[i], true
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	// Composite identifiers carry the parent level as their first segment.
	if idx := strings.Index(id, ":"); idx >= 0 {
		suffix := id[idx+1:]
		for i, item := range l.Items {
			if item.ID == suffix {
				return i
			}
		}
	}
	return -1
}

// UpdateItems refreshes the level items, re-applying the current filter.
func (l *Level) UpdateItems(items []menu.Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// EnsureVisible adjusts the viewport offset so the given row stays within a
// window of maxVisible rows. For grid levels the caller passes a row index,
// not an item index.
func (l *Level) EnsureVisible(row, maxVisible int) {
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if row < 0 {
		return
	}
	rows := l.RowCount()
	if row >= rows {
		row = rows - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := rows - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if row < l.ViewportOffset {
		l.ViewportOffset = row
	}
	upper := l.ViewportOffset + maxVisible - 1
	if row > upper {
		l.ViewportOffset = row - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}

// RowCount returns the number of rendered rows: item count for linear levels,
// ceil(n/cols) for grids.
func (l *Level) RowCount() int {
	n := len(l.Items)
	cols := l.Cols()
	if cols <= 1 {
		return n
	}
	return (n + cols - 1) / cols
}

// RowOf maps an item index to its rendered row.
func (l *Level) RowOf(index int) int {
	if index < 0 {
		return -1
	}
	return index / l.Cols()
}
