package table

import "strings"

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Cell is one grid slot: an item label plus whether it carries the active
// marker.
type Cell struct {
	Label  string
	Active bool
}

// Grid lays menu cells out in fixed-width columns separated by Gap spaces.
// Every cell is rendered with a leading marker slot, so toggling the active
// marker never shifts the column layout.
type Grid struct {
	Gap        int
	Marker     string
	Alignments []Alignment
}

func (g Grid) gap() int {
	if g.Gap <= 0 {
		return 2
	}
	return g.Gap
}

func (g Grid) marker() string {
	if g.Marker == "" {
		return "▌"
	}
	return g.Marker
}

func (g Grid) render(c Cell) string {
	slot := " "
	if c.Active {
		slot = g.marker()
	}
	return slot + " " + c.Label
}

// Widths returns the rune width of the widest rendered cell per column,
// including the marker slot. Pointer hit testing maps X coordinates onto
// columns with these widths.
func (g Grid) Widths(rows [][]Cell) []int {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				break
			}
			if w := cellWidth(g.render(cell)); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// Format returns one line per row with every cell padded to its column
// width. Short rows are filled with empty cells so the last row of a ragged
// grid still lines up.
func (g Grid) Format(rows [][]Cell) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := g.Widths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, width := range widths {
			if c > 0 {
				writeSpaces(&b, g.gap())
			}
			var cell Cell
			if c < len(row) {
				cell = row[c]
			}
			text := g.render(cell)
			pad := width - cellWidth(text)
			if pad < 0 {
				pad = 0
			}
			if c < len(g.Alignments) && g.Alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(text)
			} else {
				b.WriteString(text)
				writeSpaces(&b, pad)
			}
		}
		out[i] = b.String()
	}
	return out
}

func cellWidth(text string) int {
	return len([]rune(text))
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		b.WriteByte(' ')
	}
}
