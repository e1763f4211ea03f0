package nav

import "fmt"

// testList is an in-memory List with per-slot absent and disabled markers.
type testList struct {
	n        int
	absent   map[int]bool
	disabled map[int]bool
}

func newTestList(n int) *testList {
	return &testList{n: n, absent: map[int]bool{}, disabled: map[int]bool{}}
}

func (l *testList) disable(indices ...int) *testList {
	for _, i := range indices {
		l.disabled[i] = true
	}
	return l
}

func (l *testList) unmount(indices ...int) *testList {
	for _, i := range indices {
		l.absent[i] = true
	}
	return l
}

func (l *testList) Len() int               { return l.n }
func (l *testList) Present(i int) bool     { return !l.absent[i] }
func (l *testList) ItemDisabled(i int) bool { return l.disabled[i] }
func (l *testList) ItemID(i int) string    { return fmt.Sprintf("item-%d", i) }

// sinkCall records one focus side effect.
type sinkCall struct {
	op    string // "item", "container", "descendant", "clear"
	index int
	id    string
}

type testSink struct {
	calls []sinkCall
}

func (s *testSink) FocusItem(i int)            { s.calls = append(s.calls, sinkCall{op: "item", index: i}) }
func (s *testSink) FocusContainer()            { s.calls = append(s.calls, sinkCall{op: "container"}) }
func (s *testSink) SetActiveDescendant(id string) {
	s.calls = append(s.calls, sinkCall{op: "descendant", id: id})
}
func (s *testSink) ClearActiveDescendant() { s.calls = append(s.calls, sinkCall{op: "clear"}) }

func (s *testSink) last() (sinkCall, bool) {
	if len(s.calls) == 0 {
		return sinkCall{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// testContainer fakes a parent popup container handle.
type testContainer struct {
	hasFocus  bool
	focusCalls int
}

func (c *testContainer) ContainsFocus() bool { return c.hasFocus }
func (c *testContainer) Focus()              { c.focusCalls++ }

// testTree maps popup IDs to containers.
type testTree map[string]*testContainer

func (t testTree) Container(id string) (Container, bool) {
	c, ok := t[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// navRecord captures navigation-changed notifications.
type navRecord struct {
	indices []int
	oks     []bool
}

func (r *navRecord) callback() NavigateFunc {
	return func(index int, ok bool) {
		r.indices = append(r.indices, index)
		r.oks = append(r.oks, ok)
	}
}

func (r *navRecord) last() (int, bool) {
	if len(r.indices) == 0 {
		return -1, false
	}
	return r.indices[len(r.indices)-1], r.oks[len(r.oks)-1]
}
