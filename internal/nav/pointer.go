package nav

import "github.com/floatkit/floatnav/internal/logging/events"

// The suppress-leave flag arbitrates between keyboard and pointer
// highlighting: every key press sets it, and only a pointer movement over
// the popup container clears it. A pointer-leave while the flag is set is a
// side effect of keyboard-driven scrolling and must not erase the keyboard
// selection.

func (e *Engine) setSuppressLeave(v bool) {
	if e.suppressLeave == v {
		return
	}
	e.suppressLeave = v
	events.Pointer.Suppress(e.id, v)
}

// itemPointerMove highlights the hovered item when hover highlighting is
// enabled.
func (e *Engine) itemPointerMove(i int) {
	if !e.opts.Enabled || !e.open || !e.opts.FocusItemOnHover {
		return
	}
	if !usable(e.list, e.opts.DisabledIndices, i) {
		return
	}
	if i == e.state.CurrentIndex {
		return
	}
	events.Pointer.Hover(e.id, i)
	e.setIndex(i)
}

// floatingPointerMove clears leave suppression: the pointer is genuinely
// moving again.
func (e *Engine) floatingPointerMove() {
	if !e.opts.Enabled {
		return
	}
	e.setSuppressLeave(false)
}

// itemPointerLeave clears the highlight on a genuine mouse-initiated exit
// and returns real focus to the popup container. In virtual-focus mode only
// the logical index clears.
func (e *Engine) itemPointerLeave() {
	if !e.opts.Enabled || !e.open || !e.opts.FocusItemOnHover {
		return
	}
	if e.suppressLeave {
		return
	}
	events.Pointer.Leave(e.id)
	e.setIndex(-1)
}

// itemClick re-focuses the clicked item, compensating for platforms where a
// click does not imply focus.
func (e *Engine) itemClick(i int) {
	if !e.opts.Enabled || !e.open {
		return
	}
	if !usable(e.list, e.opts.DisabledIndices, i) {
		return
	}
	if i == e.state.CurrentIndex {
		e.syncFocus(i, true)
		return
	}
	e.setIndex(i)
}

// itemFocus syncs the active index when real focus lands on an item.
func (e *Engine) itemFocus(i int) {
	if !e.opts.Enabled {
		return
	}
	if !usable(e.list, e.opts.DisabledIndices, i) {
		return
	}
	if i == e.state.CurrentIndex {
		return
	}
	e.setIndex(i)
}

// floatingBlur clears the active index when focus leaves backward through a
// guard element (reverse-tab out of the popup).
func (e *Engine) floatingBlur(toGuard bool) {
	if !e.opts.Enabled || !toGuard {
		return
	}
	e.setIndex(-1)
}
