package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type engineFixture struct {
	engine *Engine
	list   *testList
	sink   *testSink
	sched  *ManualScheduler
	nav    *navRecord
	opens  []bool
}

func newFixture(t *testing.T, n int, mutate func(*Options)) *engineFixture {
	t.Helper()
	f := &engineFixture{
		list:  newTestList(n),
		sink:  &testSink{},
		sched: &ManualScheduler{},
		nav:   &navRecord{},
	}
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	f.engine = New(Params{
		ID:         "popup",
		List:       f.list,
		Options:    opts,
		OnNavigate: f.nav.callback(),
		RequestOpen: func(open bool, _ Key) {
			f.opens = append(f.opens, open)
		},
		Focus:     f.sink,
		Scheduler: f.sched,
	})
	return f
}

func TestOpenWithPreSelectionNotifiesImmediately(t *testing.T) {
	f := newFixture(t, 5, func(o *Options) { o.SelectedIndex = 3 })

	f.engine.SetOpen(true)

	idx, ok := f.nav.last()
	require.True(t, ok)
	require.Equal(t, 3, idx)
	require.Empty(t, f.sink.calls, "focus work must stay deferred")
	require.True(t, f.sched.Pending())

	f.sched.Flush()
	last, ok := f.sink.last()
	require.True(t, ok)
	require.Equal(t, "item", last.op)
	require.Equal(t, 3, last.index)
}

func TestOpenedByDownArrowStartsAtTop(t *testing.T) {
	f := newFixture(t, 5, nil)

	f.engine.Reference().KeyDown(KeyDown)
	require.Equal(t, []bool{true}, f.opens, "arrow on closed reference requests open")

	f.engine.SetOpen(true)
	idx, ok := f.nav.last()
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestOpenedByUpArrowStartsAtBottom(t *testing.T) {
	f := newFixture(t, 5, nil)

	f.engine.Reference().KeyDown(KeyUp)
	f.engine.SetOpen(true)

	idx, ok := f.nav.last()
	require.True(t, ok)
	require.Equal(t, 4, idx)
}

func TestNestedOpenStartsAtTopRegardlessOfKey(t *testing.T) {
	f := newFixture(t, 5, func(o *Options) { o.Nested = true })

	f.engine.Reference().KeyDown(KeyUp)
	f.engine.SetOpen(true)

	idx, ok := f.nav.last()
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestFocusOnOpenAutoSkipsPointerOpens(t *testing.T) {
	f := newFixture(t, 5, nil)

	// No key recorded: the open was pointer-driven.
	f.engine.SetOpen(true)
	require.Empty(t, f.nav.indices)
	require.False(t, f.sched.Pending())
}

func TestFocusOnOpenAlwaysFocusesPointerOpens(t *testing.T) {
	f := newFixture(t, 5, func(o *Options) { o.FocusItemOnOpen = FocusOnOpenAlways })

	f.engine.SetOpen(true)
	idx, ok := f.nav.last()
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestCloseCancelsPendingAndNotifiesNone(t *testing.T) {
	f := newFixture(t, 5, func(o *Options) { o.SelectedIndex = 2 })

	f.engine.SetOpen(true)
	require.True(t, f.sched.Pending())

	f.engine.SetOpen(false)
	require.False(t, f.sched.Pending(), "close must cancel the deferred apply")

	idx, ok := f.nav.last()
	require.False(t, ok)
	require.Equal(t, -1, idx)

	f.sched.Flush()
	require.Empty(t, f.sink.calls, "no stale focus jump after close")
}

func TestCloseUsesCallbackCapturedBeforeTransition(t *testing.T) {
	f := newFixture(t, 5, func(o *Options) { o.SelectedIndex = 2 })
	f.engine.SetOpen(true)

	var before []int
	f.engine.SetOnNavigate(func(index int, ok bool) {
		before = append(before, index)
		// A consumer may legitimately swap the callback while closing.
		f.engine.SetOnNavigate(func(int, bool) { t.Fatal("replacement callback must not see this close") })
	})
	f.engine.SetOpen(false)
	require.Equal(t, []int{-1}, before)
}

func TestKeyNavigationDefersFocusOneFrame(t *testing.T) {
	f := newFixture(t, 5, nil)
	f.engine.SetOpen(true)

	f.engine.Floating().KeyDown(KeyDown)
	idx, ok := f.nav.last()
	require.True(t, ok)
	require.Equal(t, 0, idx, "notification is synchronous")
	require.Empty(t, f.sink.calls, "focus effect is asynchronous")

	f.sched.Flush()
	last, _ := f.sink.last()
	require.Equal(t, sinkCall{op: "item", index: 0}, last)
}

func TestTwoSchedulesInOneTickApplyOnlySecondTarget(t *testing.T) {
	f := newFixture(t, 5, nil)
	f.engine.SetOpen(true)

	bindings := f.engine.Floating()
	bindings.KeyDown(KeyDown)
	bindings.KeyDown(KeyDown)
	f.sched.Flush()
	f.sched.Flush()

	require.Len(t, f.sink.calls, 1)
	require.Equal(t, sinkCall{op: "item", index: 1}, f.sink.calls[0])
}

func TestVirtualFocusUpdatesActiveDescendant(t *testing.T) {
	f := newFixture(t, 5, func(o *Options) { o.Virtual = true })
	f.engine.SetOpen(true)

	f.engine.Floating().KeyDown(KeyDown)
	f.sched.Flush()

	last, _ := f.sink.last()
	require.Equal(t, sinkCall{op: "descendant", id: "item-0"}, last)
	require.Equal(t, "item-0", f.engine.FloatingProps().ActiveDescendant)
}

func TestEscapeSentinelNotifiesNoneOnce(t *testing.T) {
	f := newFixture(t, 5, func(o *Options) {
		o.Loop = true
		o.Virtual = true
		o.AllowEscape = true
	})
	f.engine.SetOpen(true)
	bindings := f.engine.Floating()

	bindings.KeyDown(KeyEnd)
	bindings.KeyDown(KeyDown)
	idx, ok := f.nav.last()
	require.False(t, ok)
	require.Equal(t, -1, idx, "sentinel notifies none, never the raw value")
	require.Equal(t, f.list.Len(), f.engine.State().CurrentIndex)

	bindings.KeyDown(KeyDown)
	idx, ok = f.nav.last()
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestListChangedUnderOpenPopupResetsToNone(t *testing.T) {
	f := newFixture(t, 5, nil)
	f.engine.SetOpen(true)
	f.engine.Floating().KeyDown(KeyEnd)
	f.sched.Flush()

	shrunk := newTestList(3)
	f.engine.ListChanged(shrunk)

	idx, ok := f.nav.last()
	require.False(t, ok)
	require.Equal(t, -1, idx)
	last, _ := f.sink.last()
	require.Equal(t, "container", last.op, "real mode re-applies focus to nothing")
}

func TestListChangedKeepsResolvableIndex(t *testing.T) {
	f := newFixture(t, 5, nil)
	f.engine.SetOpen(true)
	f.engine.Floating().KeyDown(KeyDown)
	before := len(f.nav.indices)

	f.engine.ListChanged(newTestList(4))
	require.Len(t, f.nav.indices, before, "a still-valid index must survive a contents change")
}

func TestNestedCloseReturnsFocusToParentContainer(t *testing.T) {
	parent := &testContainer{}
	tree := testTree{"parent": parent}
	sched := &ManualScheduler{}
	e := New(Params{
		ID:       "child",
		ParentID: "parent",
		List:     newTestList(3),
		Options: func() Options {
			o := DefaultOptions()
			o.Nested = true
			return o
		}(),
		Focus:     &testSink{},
		Scheduler: sched,
		Tree:      tree,
	})
	e.SetOpen(true)
	e.SetOpen(false)
	require.Equal(t, 1, parent.focusCalls)

	// Focus already inside the parent: no redundant focus move.
	parent.hasFocus = true
	e.SetOpen(true)
	e.SetOpen(false)
	require.Equal(t, 1, parent.focusCalls)
}

func TestCrossAxisCloseRequestsCloseForNested(t *testing.T) {
	f := newFixture(t, 5, func(o *Options) { o.Nested = true })
	f.engine.SetOpen(true)
	f.opens = nil

	f.engine.Floating().KeyDown(KeyLeft)
	require.Equal(t, []bool{false}, f.opens)
}

func TestCrossAxisOpenOnClosedNestedReference(t *testing.T) {
	f := newFixture(t, 5, func(o *Options) {
		o.Nested = true
		o.OpenOnArrowKeyDown = false
	})

	f.engine.Reference().KeyDown(KeyRight)
	require.Equal(t, []bool{true}, f.opens)

	f.opens = nil
	f.engine.Reference().KeyDown(KeyLeft)
	require.Empty(t, f.opens, "close arrow must not open")
}

func TestDisabledEngineIgnoresEverything(t *testing.T) {
	f := newFixture(t, 5, func(o *Options) { o.Enabled = false })
	f.engine.SetOpen(true)

	f.engine.Floating().KeyDown(KeyDown)
	f.engine.Item(2).PointerMove()
	require.Empty(t, f.nav.indices)
	require.Empty(t, f.sink.calls)
}

func TestSetEnabledFalseCancelsPending(t *testing.T) {
	f := newFixture(t, 5, nil)
	f.engine.SetOpen(true)
	f.engine.Floating().KeyDown(KeyDown)
	require.True(t, f.sched.Pending())

	f.engine.SetEnabled(false)
	require.False(t, f.sched.Pending())
}

func TestBlurToGuardClearsActiveIndex(t *testing.T) {
	f := newFixture(t, 5, nil)
	f.engine.SetOpen(true)
	f.engine.Floating().KeyDown(KeyDown)

	f.engine.Floating().Blur(true)
	idx, ok := f.nav.last()
	require.False(t, ok)
	require.Equal(t, -1, idx)
}

func TestFloatingPropsOrientation(t *testing.T) {
	f := newFixture(t, 5, nil)
	require.Equal(t, "vertical", f.engine.FloatingProps().Orientation)

	g := newFixture(t, 9, func(o *Options) {
		o.Orientation = OrientationBoth
		o.Cols = 3
	})
	require.Empty(t, g.engine.FloatingProps().Orientation, "orientation attribute omitted for both")
}
