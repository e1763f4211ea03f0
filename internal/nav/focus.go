package nav

import "github.com/floatkit/floatnav/internal/logging/events"

// syncFocus turns an active-index decision into the DOM-visible effect. The
// notification has already been emitted; the effect itself is deferred by
// one rendering frame so that a pointer press's default focus behaviour
// resolves first.
func (e *Engine) syncFocus(i int, ok bool) {
	if !e.open || e.sink == nil {
		return
	}
	if !ok {
		e.cancelPending()
		if e.opts.Virtual {
			e.sink.ClearActiveDescendant()
		} else {
			e.sink.FocusContainer()
		}
		return
	}
	idx := i
	e.schedule(func() { e.applyFocus(idx) })
}

// schedule registers the deferred focus application, canceling any previous
// one so that at most one is ever outstanding.
func (e *Engine) schedule(fn func()) {
	e.cancelPending()
	e.cancel = e.sched.Defer(fn)
	events.Focus.Scheduled(e.id, e.state.CurrentIndex)
}

func (e *Engine) cancelPending() {
	if e.cancel == nil {
		return
	}
	e.cancel()
	e.cancel = nil
	events.Focus.Canceled(e.id)
}

func (e *Engine) applyFocus(i int) {
	e.cancel = nil
	if !e.open || !e.opts.Enabled {
		return
	}
	if !usable(e.list, e.opts.DisabledIndices, i) {
		return
	}
	if e.opts.Virtual {
		e.sink.SetActiveDescendant(e.list.ItemID(i))
	} else {
		e.sink.FocusItem(i)
	}
	events.Focus.Applied(e.id, i, e.opts.Virtual)
	e.state.LastKey = KeyNone
}
