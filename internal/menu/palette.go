package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

const paletteCols = 4

// paletteSwatches lays out a 4-wide grid of theme accents. The final row is
// short on purpose so column wrap lands on a real cell.
var paletteSwatches = []struct {
	ID    string
	Label string
}{
	{"rosewater", "Rosewater"},
	{"flamingo", "Flamingo"},
	{"mauve", "Mauve"},
	{"red", "Red"},
	{"maroon", "Maroon"},
	{"peach", "Peach"},
	{"yellow", "Yellow"},
	{"green", "Green"},
	{"teal", "Teal"},
	{"sky", "Sky"},
	{"sapphire", "Sapphire"},
	{"blue", "Blue"},
	{"lavender", "Lavender"},
	{"gray", "Gray"},
}

func loadPaletteMenu(ctx Context) ([]Item, error) {
	items := make([]Item, 0, len(paletteSwatches))
	for _, swatch := range paletteSwatches {
		items = append(items, Item{
			ID:       "palette:" + swatch.ID,
			Label:    swatch.Label,
			Disabled: swatch.ID == ctx.ActiveTheme,
		})
	}
	return items, nil
}

func PaletteAction(_ Context, item Item) tea.Cmd {
	accent := itemSuffix(item.ID, "palette:")
	if accent == "" {
		return func() tea.Msg { return ActionResult{Err: fmt.Errorf("invalid palette selection")} }
	}
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("accent set to %s", accent)}
	}
}
