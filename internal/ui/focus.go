package ui

// focusRef identifies where real focus currently sits: a popup container
// (index -1) or one of its items.
type focusRef struct {
	level string
	index int
}

// levelSink applies one popup's focus decisions to the model.
type levelSink struct {
	model *Model
	id    string
}

func (s *levelSink) FocusItem(index int) {
	s.model.focus = focusRef{level: s.id, index: index}
	if pl := s.model.findLevel(s.id); pl != nil {
		pl.level.EnsureVisible(pl.level.RowOf(index), s.model.maxVisibleItems())
	}
}

func (s *levelSink) FocusContainer() {
	s.model.focus = focusRef{level: s.id, index: -1}
}

func (s *levelSink) SetActiveDescendant(id string) {
	s.model.activeDesc = id
	if pl := s.model.findLevel(s.id); pl != nil {
		if idx := pl.level.IndexOf(id); idx >= 0 {
			pl.level.EnsureVisible(pl.level.RowOf(idx), s.model.maxVisibleItems())
		}
	}
}

func (s *levelSink) ClearActiveDescendant() {
	s.model.activeDesc = ""
}

// levelContainer is the popup tree handle used for nested focus return.
type levelContainer struct {
	model *Model
	id    string
}

func (c *levelContainer) ContainsFocus() bool {
	return c.model.focus.level == c.id
}

func (c *levelContainer) Focus() {
	c.model.focus = focusRef{level: c.id, index: -1}
}
