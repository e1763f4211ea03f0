package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/floatkit/floatnav/internal/format/table"
)

const gridCellGap = 2

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// layoutInfo records where items landed in the last render so pointer events
// can be mapped back onto item indices.
type layoutInfo struct {
	itemsTop  int
	rowsShown int
	offset    int
	colWidths []int
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.menuHeader()
	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	m.layout = layoutInfo{itemsTop: len(lines)}
	if m.loading {
		label := m.pendingLabel
		if label == "" {
			label = m.pendingID
		}
		lines = append(lines, styledLine{text: fmt.Sprintf("Loading %s…", label), style: styles.Loading})
	} else if current := m.currentLevel(); current != nil {
		lines = append(lines, m.itemLines(current)...)
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerText(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	// Bottom bar: error/status line + filter prompt.
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	promptText, _ := m.filterPrompt()
	bottomLines := []styledLine{
		statusLine,
		{text: promptText},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return fitRows(renderLines(lines), m.width)
}

// fitRows pads or trims every rendered row to exactly width visible columns.
// Rendered rows carry embedded ANSI codes, so measurement and truncation have
// to be ANSI-aware.
func fitRows(rendered string, width int) string {
	if width <= 0 {
		return rendered
	}
	rows := strings.Split(rendered, "\n")
	for i, row := range rows {
		w := ansi.StringWidth(row)
		if w > width {
			rows[i] = truncate.StringWithTail(row, uint(width-1), "…")
		} else if w < width {
			rows[i] = row + strings.Repeat(" ", width-w)
		}
	}
	return strings.Join(rows, "\n")
}

// itemLines renders the visible window of the current level, one line per
// row, and records the layout for pointer hit-testing.
func (m *Model) itemLines(current *popupLevel) []styledLine {
	lvl := current.level
	lvl.EnsureVisible(lvl.RowOf(m.activeRenderIndex(current)), m.maxVisibleItems())
	if lvl.Len() == 0 {
		msg := "(no entries)"
		if lvl.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", lvl.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start := 0
	rows := lvl.RowCount()
	shown := rows
	if maxRows := m.maxVisibleItems(); maxRows > 0 && rows > maxRows {
		start = lvl.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxRows > rows {
			start = rows - maxRows
			lvl.ViewportOffset = start
		}
		shown = maxRows
	}
	m.layout.offset = start
	m.layout.rowsShown = shown

	if lvl.Cols() > 1 {
		return m.gridLines(current, start, shown)
	}

	lines := make([]styledLine, 0, shown)
	for row := start; row < start+shown; row++ {
		item, _ := lvl.Item(row)
		lines = append(lines, m.buildItemLine(current, item.Label, row, m.width))
	}
	return lines
}

// gridLines lays the level's items out in aligned columns.
func (m *Model) gridLines(current *popupLevel, start, shown int) []styledLine {
	lvl := current.level
	cols := lvl.Cols()
	active := m.activeRenderIndex(current)

	cells := make([][]table.Cell, 0, lvl.RowCount())
	for row := 0; row < lvl.RowCount(); row++ {
		line := make([]table.Cell, cols)
		for col := 0; col < cols; col++ {
			index := row*cols + col
			item, ok := lvl.Item(index)
			if !ok {
				continue
			}
			line[col] = table.Cell{Label: item.Label, Active: index == active}
		}
		cells = append(cells, line)
	}
	grid := table.Grid{Gap: gridCellGap}
	formatted := grid.Format(cells)

	m.layout.colWidths = grid.Widths(cells)

	lines := make([]styledLine, 0, shown)
	for row := start; row < start+shown && row < len(formatted); row++ {
		style := styles.Item
		if active >= 0 && lvl.RowOf(active) == row {
			style = styles.SelectedItem
		}
		lines = append(lines, styledLine{text: formatted[row], style: style})
	}
	return lines
}

// activeRenderIndex returns the index to highlight: the within-range active
// index, or -1 when nothing is active or the index escaped past the edge.
func (m *Model) activeRenderIndex(current *popupLevel) int {
	index, ok := current.engine.ActiveIndex()
	if !ok {
		return -1
	}
	return index
}

// buildItemLine constructs a single styledLine for a linear menu item.
func (m *Model) buildItemLine(current *popupLevel, label string, idx, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	item, _ := current.level.Item(idx)
	if item.Disabled {
		lineStyle = styles.DisabledItem
	}
	if idx == m.activeRenderIndex(current) {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// footerText surfaces the container's navigation attributes next to the key
// hints, mirroring what a screen reader would be told.
func (m *Model) footerText() string {
	hints := "↑/↓ move  enter select  esc back  ctrl+c quit"
	current := m.currentLevel()
	if current == nil {
		return hints
	}
	props := current.engine.FloatingProps()
	segments := []string{hints}
	if props.Orientation != "" {
		segments = append(segments, "orientation: "+props.Orientation)
	}
	if props.ActiveDescendant != "" {
		segments = append(segments, "active: "+props.ActiveDescendant)
	}
	return strings.Join(segments, "  |  ")
}

func (m *Model) menuHeader() string {
	segments := m.headerSegments()
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) headerSegments() []string {
	depth := len(m.stack)
	if depth == 0 {
		return nil
	}
	if depth == 1 {
		return []string{defaultRootTitle}
	}
	segments := make([]string, 0, depth)
	for i := 1; i < depth; i++ {
		segment := headerSegmentForLevel(m.stack[i].level)
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	if len(segments) == 0 {
		return []string{defaultRootTitle}
	}
	return segments
}

func headerSegmentForLevel(l *level) string {
	if l == nil {
		return ""
	}
	candidate := strings.TrimSpace(l.ID)
	if candidate == "" {
		candidate = strings.TrimSpace(l.Title)
	}
	if candidate == "" {
		return ""
	}
	if idx := strings.LastIndex(candidate, ":"); idx >= 0 {
		candidate = candidate[idx+1:]
	}
	candidate = headerSegmentCleaner.Replace(candidate)
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}
	fields := strings.Fields(strings.ToLower(candidate))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		current.engine.SetPageSize(m.maxVisibleItems())
	}
	return nil
}

// maxVisibleItems returns the number of item rows that fit the viewport.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if header := m.menuHeader(); header != "" {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
