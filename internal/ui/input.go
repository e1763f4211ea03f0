package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/floatkit/floatnav/internal/logging/events"
	"github.com/floatkit/floatnav/internal/nav"
	uistate "github.com/floatkit/floatnav/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.noteKeyPress(keyMsg)
		return m.handleEscapeKey()
	case "enter":
		m.noteKeyPress(keyMsg)
		return m.handleEnterKey()
	}
	if handled, cmd := m.handleNavKey(keyMsg); handled {
		return cmd
	}
	m.noteKeyPress(keyMsg)
	if m.handleTextInput(keyMsg) {
		return nil
	}
	return nil
}

// noteKeyPress forwards key presses the model handles itself to the top
// popup's engine. The engine ignores non-navigation keys but records that
// the keyboard was used, so a pointer leave arriving in the same frame does
// not clear the selection.
func (m *Model) noteKeyPress(keyMsg tea.KeyMsg) {
	if current := m.currentLevel(); current != nil {
		current.engine.Floating().KeyDown(nav.Key(keyMsg.String()))
	}
}

// handleNavKey routes navigation keys into the top popup's engine. Cross-axis
// open keys descend into the active item's submenu instead when one exists.
func (m *Model) handleNavKey(keyMsg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.currentLevel()
	if current == nil {
		return false, nil
	}
	k := nav.Key(keyMsg.String())
	switch k {
	case nav.KeyUp, nav.KeyDown, nav.KeyLeft, nav.KeyRight,
		nav.KeyHome, nav.KeyEnd, nav.KeyPageUp, nav.KeyPageDown:
	default:
		return false, nil
	}
	if m.loading {
		return true, nil
	}
	eng := current.engine
	opts := eng.Options()
	eng.SetPageSize(m.maxVisibleItems())
	if nav.IsCrossAxisOpenKey(k, opts.Orientation, opts.RTL) {
		if cmd, opened := m.descendFromActive(k); opened {
			return true, cmd
		}
	}
	eng.Floating().KeyDown(k)
	return true, nil
}

// descendFromActive opens the active item's submenu in response to a
// cross-axis open key. Items without a submenu fall through to plain
// navigation.
func (m *Model) descendFromActive(key nav.Key) (tea.Cmd, bool) {
	current := m.currentLevel()
	if current == nil {
		return nil, false
	}
	index, ok := current.engine.ActiveIndex()
	if !ok {
		return nil, false
	}
	item, ok := current.level.Item(index)
	if !ok || item.Disabled {
		return nil, false
	}
	node := m.nodeForItem(current, item)
	if node == nil || node.Loader == nil {
		return nil, false
	}
	return m.openSubmenu(node, item, key), true
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if m.loading {
		return false
	}
	current := m.currentLevel()
	if current == nil {
		return false
	}
	lvl := current.level
	switch msg.String() {
	case "ctrl+u":
		if lvl.Filter == "" {
			return false
		}
		before := lvl.FilterCursorPos()
		lvl.SetFilter("", 0)
		m.noteFilterCursorChange(lvl, before)
		m.afterFilterChange(current)
		events.Filter.Cleared(lvl.ID)
		return true
	case "ctrl+w":
		before := lvl.FilterCursorPos()
		if !lvl.DeleteFilterWordBackward() {
			return false
		}
		m.noteFilterCursorChange(lvl, before)
		m.afterFilterChange(current)
		events.Filter.WordBackspace(lvl.ID, lvl.Filter)
		return true
	case "ctrl+a":
		before := lvl.FilterCursorPos()
		if !lvl.MoveFilterCursorStart() {
			return false
		}
		m.noteFilterCursorChange(lvl, before)
		events.Filter.Cursor(lvl.ID, lvl.FilterCursor)
		return true
	case "ctrl+e":
		before := lvl.FilterCursorPos()
		if !lvl.MoveFilterCursorEnd() {
			return false
		}
		m.noteFilterCursorChange(lvl, before)
		events.Filter.Cursor(lvl.ID, lvl.FilterCursor)
		return true
	case "ctrl+b":
		before := lvl.FilterCursorPos()
		if !lvl.MoveFilterCursorRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(lvl, before)
		events.Filter.Cursor(lvl.ID, lvl.FilterCursor)
		return true
	case "ctrl+f":
		before := lvl.FilterCursorPos()
		if !lvl.MoveFilterCursorRuneForward() {
			return false
		}
		m.noteFilterCursorChange(lvl, before)
		events.Filter.Cursor(lvl.ID, lvl.FilterCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		if lvl.Filter == "" {
			return false
		}
		return m.appendToFilter(" ")
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	current := m.currentLevel()
	if current == nil || text == "" {
		return false
	}
	lvl := current.level
	before := lvl.FilterCursorPos()
	if !lvl.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(lvl, before)
	m.afterFilterChange(current)
	events.Filter.Append(lvl.ID, lvl.Filter)
	return true
}

func (m *Model) removeFilterRune() bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	lvl := current.level
	before := lvl.FilterCursorPos()
	if !lvl.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(lvl, before)
	m.afterFilterChange(current)
	events.Filter.Backspace(lvl.ID, lvl.Filter)
	return true
}

// afterFilterChange resyncs the engine with the narrowed item list and moves
// the active index to the best remaining match.
func (m *Model) afterFilterChange(current *popupLevel) {
	m.forceClearInfo()
	m.errMsg = ""
	lvl := current.level
	current.engine.ListChanged(lvl)
	if lvl.Filter != "" && lvl.Len() > 0 {
		if idx := uistate.BestMatchIndex(lvl.Items, lvl.Filter); idx >= 0 && !lvl.ItemDisabled(idx) {
			current.engine.Item(idx).Focus()
		}
	}
	lvl.EnsureVisible(0, m.maxVisibleItems())
}

func (m *Model) filterPrompt() (string, *lipgloss.Style) {
	current := m.currentLevel()
	if current == nil {
		return ">", styles.Filter
	}
	lvl := current.level
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = *styles.Filter
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := lvl.Filter
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.FilterPlaceholder
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest), nil
	}
	runes := []rune(text)
	pos := lvl.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderFilterCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after, nil
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
