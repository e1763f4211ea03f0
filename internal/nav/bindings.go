package nav

// Target tags the three event-binding roles an engine serves.
type Target int

const (
	// TargetReference is the control that anchors and opens the popup.
	TargetReference Target = iota
	// TargetFloating is the popup container.
	TargetFloating
	// TargetItem is an individual navigable item.
	TargetItem
)

// ReferenceBindings are the event handlers for the reference control.
type ReferenceBindings struct {
	KeyDown func(Key)
}

// FloatingBindings are the event handlers for the popup container.
type FloatingBindings struct {
	KeyDown     func(Key)
	PointerMove func()
	// Blur clears the active index when toGuard is true, signalling that
	// focus left backward via reverse-tab.
	Blur func(toGuard bool)
}

// ItemBindings are the event handlers for one item slot.
type ItemBindings struct {
	Focus        func()
	PointerMove  func()
	PointerLeave func()
	Click        func()
}

// Reference returns the binding record for the reference control.
func (e *Engine) Reference() ReferenceBindings {
	return ReferenceBindings{KeyDown: e.referenceKeyDown}
}

// Floating returns the binding record for the popup container.
func (e *Engine) Floating() FloatingBindings {
	return FloatingBindings{
		KeyDown:     e.floatingKeyDown,
		PointerMove: e.floatingPointerMove,
		Blur:        e.floatingBlur,
	}
}

// Item returns the binding record for the item at index i.
func (e *Engine) Item(i int) ItemBindings {
	return ItemBindings{
		Focus:        func() { e.itemFocus(i) },
		PointerMove:  func() { e.itemPointerMove(i) },
		PointerLeave: func() { e.itemPointerLeave() },
		Click:        func() { e.itemClick(i) },
	}
}

// FloatingProps is the accessibility surface the popup container exposes.
type FloatingProps struct {
	// ActiveDescendant is the active item's ID in virtual-focus mode, empty
	// otherwise.
	ActiveDescendant string
	// Orientation mirrors the configured orientation, empty for "both".
	Orientation string
}

// FloatingProps derives the container attributes from the current state.
func (e *Engine) FloatingProps() FloatingProps {
	var p FloatingProps
	if e.opts.Orientation != OrientationBoth {
		p.Orientation = string(e.opts.Orientation)
	}
	if e.opts.Virtual {
		if i, ok := e.ActiveIndex(); ok {
			p.ActiveDescendant = e.list.ItemID(i)
		}
	}
	return p
}
