package nav

import (
	"github.com/floatkit/floatnav/internal/logging/events"
)

// NavigateFunc receives the synchronously emitted navigation-changed
// notification. ok is false when nothing is active, in which case index is
// -1, never a raw out-of-bounds value.
type NavigateFunc func(index int, ok bool)

// RequestOpenFunc asks the open/close owner to change the popup's open
// state. The engine never decides openness itself.
type RequestOpenFunc func(open bool, key Key)

// FocusSink applies focus decisions to the rendering surface.
type FocusSink interface {
	// FocusItem moves real focus to the item. It must not scroll.
	FocusItem(index int)
	// FocusContainer moves real focus to the popup container.
	FocusContainer()
	// SetActiveDescendant updates the logical active-descendant reference
	// without moving real focus.
	SetActiveDescendant(id string)
	ClearActiveDescendant()
}

// Container is the popup container handle used for nested-submenu focus
// return.
type Container interface {
	ContainsFocus() bool
	Focus()
}

// TreeLookup resolves a popup identifier to its container handle. The engine
// only ever reads from the tree; it never walks or owns it.
type TreeLookup interface {
	Container(id string) (Container, bool)
}

// State is the mutable navigation state of one engine instance.
type State struct {
	// CurrentIndex is in [-1, list length]: -1 means nothing active and the
	// length value is the escaped sentinel, reachable only under the escape
	// policy.
	CurrentIndex int
	// LastKey is the most recent navigation-relevant key. It is cleared
	// after each focus settle.
	LastKey Key
}

// Params wires an Engine to its collaborators.
type Params struct {
	// ID identifies this popup in trace events and the popup tree.
	ID string
	// ParentID identifies the parent popup of a nested submenu.
	ParentID    string
	List        List
	Options     Options
	OnNavigate  NavigateFunc
	RequestOpen RequestOpenFunc
	Focus       FocusSink
	Scheduler   Scheduler
	Tree        TreeLookup
}

// Engine owns the active-index state machine for one floating popup.
type Engine struct {
	id       string
	parentID string
	opts     Options
	list     List

	state       State
	onNavigate  NavigateFunc
	requestOpen RequestOpenFunc
	sink        FocusSink
	sched       Scheduler
	tree        TreeLookup

	cancel        CancelFunc
	open          bool
	everOpen      bool
	suppressLeave bool
	pageSize      int
}

const defaultPageSize = 10

// New constructs an engine. Configuration problems are reported as non-fatal
// warnings through the trace log; the engine degrades gracefully.
func New(p Params) *Engine {
	opts := p.Options.normalized()
	e := &Engine{
		id:          p.ID,
		parentID:    p.ParentID,
		opts:        opts,
		list:        p.List,
		onNavigate:  p.OnNavigate,
		requestOpen: p.RequestOpen,
		sink:        p.Focus,
		sched:       p.Scheduler,
		tree:        p.Tree,
		pageSize:    defaultPageSize,
	}
	e.state.CurrentIndex = -1
	if opts.SelectedIndex >= 0 && p.List != nil && opts.SelectedIndex < p.List.Len() {
		e.state.CurrentIndex = opts.SelectedIndex
	}
	if e.sched == nil {
		e.sched = FrameScheduler{}
	}
	for _, w := range opts.Validate() {
		events.Nav.ConfigWarning(e.id, w)
	}
	return e
}

// ActiveIndex returns the current in-bounds active index. ok is false when
// nothing is active, including both escape sentinels.
func (e *Engine) ActiveIndex() (int, bool) {
	i := e.state.CurrentIndex
	if i >= 0 && e.list != nil && i < e.list.Len() {
		return i, true
	}
	return -1, false
}

// State returns a snapshot of the navigation state.
func (e *Engine) State() State { return e.state }

// IsOpen reports the last open state the engine was told about.
func (e *Engine) IsOpen() bool { return e.open }

// Options returns the engine configuration.
func (e *Engine) Options() Options { return e.opts }

// SetPageSize sets the viewport size used by the page keys.
func (e *Engine) SetPageSize(n int) {
	if n > 0 {
		e.pageSize = n
	}
}

// SetOnNavigate replaces the navigation-changed callback. A close edge uses
// the callback identity captured before the transition.
func (e *Engine) SetOnNavigate(fn NavigateFunc) { e.onNavigate = fn }

// SetEnabled toggles the engine. Disabling cancels pending focus work.
func (e *Engine) SetEnabled(enabled bool) {
	e.opts.Enabled = enabled
	if !enabled {
		e.cancelPending()
	}
}

// Teardown cancels outstanding deferred work. The engine must not be used
// afterwards.
func (e *Engine) Teardown() { e.cancelPending() }

// SetOpen informs the engine of a popup open/close transition. Repeating the
// current state is a no-op.
func (e *Engine) SetOpen(open bool) {
	if open == e.open {
		return
	}
	if open {
		e.handleOpen()
	} else {
		e.handleClose()
	}
}

func (e *Engine) handleOpen() {
	e.open = true
	events.Nav.Open(e.id, string(e.state.LastKey))
	if e.opts.Enabled {
		if e.opts.SelectedIndex >= 0 {
			// Pre-selection is synced before any deferred focus work.
			e.setIndex(e.opts.SelectedIndex)
		} else if e.shouldFocusOnOpen() {
			e.setIndex(e.initialIndex())
		}
	}
	e.everOpen = true
}

// initialIndex implements the opening rule: start at the top for an
// end-type or unknown triggering key and for nested submenus, at the bottom
// for a start-type key.
func (e *Engine) initialIndex() int {
	k := e.state.LastKey
	if IsMoveToEndKey(k, e.opts.Orientation, e.opts.RTL) || k == KeyNone || e.opts.Nested {
		return MinIndex(e.list, e.opts.DisabledIndices)
	}
	return MaxIndex(e.list, e.opts.DisabledIndices)
}

func (e *Engine) shouldFocusOnOpen() bool {
	switch e.opts.FocusItemOnOpen {
	case FocusOnOpenAlways:
		return true
	case FocusOnOpenNever:
		return false
	default:
		return e.state.LastKey != KeyNone
	}
}

func (e *Engine) handleClose() {
	// The callback may legitimately change once closed; keep the identity
	// from before the transition for this one notification.
	cb := e.onNavigate
	e.open = false
	e.cancelPending()
	e.state.CurrentIndex = -1
	e.state.LastKey = KeyNone
	events.Nav.Close(e.id)
	if cb != nil {
		cb(-1, false)
	}
	e.returnFocusToParent()
}

// returnFocusToParent moves real focus to the parent popup container after a
// nested submenu closes, unless focus already sits inside the parent.
func (e *Engine) returnFocusToParent() {
	if !e.opts.Nested || e.tree == nil || e.parentID == "" {
		return
	}
	parent, ok := e.tree.Container(e.parentID)
	if !ok || parent.ContainsFocus() {
		return
	}
	parent.Focus()
	events.Focus.Parent(e.id, e.parentID)
}

// ListChanged installs the latest item snapshot. When the contents change
// under an already-open popup and the active index no longer resolves, the
// selection resets to none unless a pre-selection policy is active.
func (e *Engine) ListChanged(l List) {
	e.list = l
	if !e.open || !e.everOpen {
		return
	}
	if cur := e.state.CurrentIndex; cur >= 0 && usable(l, e.opts.DisabledIndices, cur) {
		return
	}
	if e.opts.SelectedIndex < 0 {
		e.setIndex(-1)
	}
}

// floatingKeyDown implements list traversal for a key landing on the popup
// container.
func (e *Engine) floatingKeyDown(k Key) {
	if !e.opts.Enabled {
		return
	}
	e.setSuppressLeave(true)
	e.state.LastKey = k
	o := e.opts
	switch {
	case k == KeyHome || k == KeyEnd || k == KeyPageUp || k == KeyPageDown:
		e.applyMove(nextLinearIndex(e.list, o, e.state.CurrentIndex, k, e.pageSize))
	case IsMainAxisKey(k, o.Orientation):
		if o.Cols > 1 {
			e.applyMove(nextGridIndex(e.list, o, e.state.CurrentIndex, k))
		} else {
			e.applyMove(nextLinearIndex(e.list, o, e.state.CurrentIndex, k, e.pageSize))
		}
	case o.Nested && IsCrossAxisCloseKey(k, o.Orientation, o.RTL):
		if e.requestOpen != nil {
			e.requestOpen(false, k)
		}
	}
}

// referenceKeyDown records the last navigation key and forwards open
// requests while the popup is closed.
func (e *Engine) referenceKeyDown(k Key) {
	if !e.opts.Enabled {
		return
	}
	e.setSuppressLeave(true)
	e.state.LastKey = k
	if e.open || e.requestOpen == nil {
		return
	}
	o := e.opts
	if o.OpenOnArrowKeyDown && IsMainAxisKey(k, o.Orientation) {
		e.requestOpen(true, k)
		return
	}
	if o.Nested && IsCrossAxisOpenKey(k, o.Orientation, o.RTL) {
		e.requestOpen(true, k)
	}
}

func (e *Engine) applyMove(t int) {
	if t == e.state.CurrentIndex {
		return
	}
	e.setIndex(t)
}

// setIndex records the new index, emits the navigation-changed notification
// synchronously, then hands the focus side effect to the synchronizer.
func (e *Engine) setIndex(i int) {
	n := 0
	if e.list != nil {
		n = e.list.Len()
	}
	if i < -1 {
		i = -1
	}
	if i > n {
		i = n
	}
	e.state.CurrentIndex = i
	ok := i >= 0 && i < n && usable(e.list, e.opts.DisabledIndices, i)
	notified := i
	if !ok {
		notified = -1
	}
	events.Nav.Index(e.id, notified, ok, string(e.state.LastKey))
	if e.onNavigate != nil {
		e.onNavigate(notified, ok)
	}
	e.syncFocus(i, ok)
}
